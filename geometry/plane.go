package geometry

// Plane is anything that can report the signed distance of a point from
// itself.
type Plane interface {
	Altitude(p Point) float64
}

// PlaneByOriginAndNormal is a plane through Origin with unit normal Normal.
type PlaneByOriginAndNormal struct {
	Origin Point
	Normal Vector
}

// NewPlaneByOriginAndNormal normalizes the normal. It returns false when the
// normal has no direction.
func NewPlaneByOriginAndNormal(origin Point, normal Vector) (PlaneByOriginAndNormal, bool) {
	unit, ok := TryNormalize(normal)
	if !ok {
		return PlaneByOriginAndNormal{}, false
	}
	return PlaneByOriginAndNormal{Origin: origin, Normal: unit}, true
}

func (p PlaneByOriginAndNormal) Altitude(q Point) float64 {
	return p.Normal.Dot(q.Minus(p.Origin))
}

// ProjectPoint drops q onto the plane along the normal.
func (p PlaneByOriginAndNormal) ProjectPoint(q Point) Point {
	return q.PlusScaled(p.Normal, -p.Altitude(q))
}
