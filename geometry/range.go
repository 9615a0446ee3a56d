package geometry

import "math"

// Range3d is an axis aligned box. A null range (containing nothing) has Low
// above High on every axis.
type Range3d struct {
	Low, High Point
}

func NullRange() Range3d {
	return Range3d{
		Low:  Point{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		High: Point{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// RangeOfPoints returns the smallest range containing all the points.
func RangeOfPoints(points ...Point) Range3d {
	r := NullRange()
	for _, p := range points {
		r.ExtendXYZ(p.X, p.Y, p.Z)
	}
	return r
}

func (r *Range3d) IsNull() bool {
	return r.High.X < r.Low.X || r.High.Y < r.Low.Y || r.High.Z < r.Low.Z
}

func (r *Range3d) ExtendPoint(p Point) {
	r.ExtendXYZ(p.X, p.Y, p.Z)
}

func (r *Range3d) ExtendXYZ(x, y, z float64) {
	r.Low.X = math.Min(r.Low.X, x)
	r.Low.Y = math.Min(r.Low.Y, y)
	r.Low.Z = math.Min(r.Low.Z, z)
	r.High.X = math.Max(r.High.X, x)
	r.High.Y = math.Max(r.High.Y, y)
	r.High.Z = math.Max(r.High.Z, z)
}

func (r *Range3d) ContainsPoint(p Point) bool {
	return p.X >= r.Low.X && p.X <= r.High.X &&
		p.Y >= r.Low.Y && p.Y <= r.High.Y &&
		p.Z >= r.Low.Z && p.Z <= r.High.Z
}

// Diagonal returns the vector from Low to High, or zero for a null range.
func (r *Range3d) Diagonal() Vector {
	if r.IsNull() {
		return Vector{}
	}
	return r.High.Minus(r.Low)
}
