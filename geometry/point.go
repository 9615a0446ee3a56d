package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vector is a 3-D displacement. It is r3.Vector, so the usual Add, Sub, Mul,
// Dot, Cross, Norm and Normalize are all available.
type Vector = r3.Vector

// Point is a 3-D position. It shares its layout with Vector but is a distinct
// type, so positions and displacements are not mixed up by accident.
type Point struct {
	X, Y, Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vector returns the displacement from the global origin to p.
func (p Point) Vector() Vector {
	return r3.Vector(p)
}

// Minus returns the vector from other to p.
func (p Point) Minus(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// VectorTo returns the vector from p to other.
func (p Point) VectorTo(other Point) Vector {
	return other.Minus(p)
}

func (p Point) Plus(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p Point) PlusScaled(v Vector, scale float64) Point {
	return Point{X: p.X + scale*v.X, Y: p.Y + scale*v.Y, Z: p.Z + scale*v.Z}
}

// Interpolate returns the point at fraction along the segment from p to other.
func (p Point) Interpolate(fraction float64, other Point) Point {
	return Point{
		X: p.X + fraction*(other.X-p.X),
		Y: p.Y + fraction*(other.Y-p.Y),
		Z: p.Z + fraction*(other.Z-p.Z),
	}
}

func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

func (p Point) DistanceSquared(other Point) float64 {
	dx, dy, dz := other.X-p.X, other.Y-p.Y, other.Z-p.Z
	return dx*dx + dy*dy + dz*dz
}

func (p Point) DistanceXY(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// IsAlmostEqual compares componentwise within tol.
func (p Point) IsAlmostEqual(other Point, tol float64) bool {
	return math.Abs(p.X-other.X) <= tol &&
		math.Abs(p.Y-other.Y) <= tol &&
		math.Abs(p.Z-other.Z) <= tol
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// CrossXY is the z component of the cross product of u and v.
func CrossXY(u, v Vector) float64 {
	return u.X*v.Y - u.Y*v.X
}

// TryNormalize returns the unit vector along v, or false when v is too short to
// have a direction.
func TryNormalize(v Vector) (Vector, bool) {
	length := v.Norm()
	if length <= SmallMetricDistanceSquared {
		return Vector{}, false
	}
	return v.Mul(1 / length), true
}
