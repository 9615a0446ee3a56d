package geometry

import "github.com/pkg/errors"

// Transform is an affine map: a linear part followed by a translation.
//
//	p' = Matrix * p + Origin
type Transform struct {
	Matrix Matrix3d
	Origin Vector
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{Matrix: Identity3d()}
}

// Translation creates a pure translation.
func Translation(v Vector) Transform {
	return Transform{Matrix: Identity3d(), Origin: v}
}

// NewTransform pairs a linear part with a translation.
func NewTransform(m Matrix3d, origin Vector) Transform {
	return Transform{Matrix: m, Origin: origin}
}

// MultiplyPoint applies the full affine map to a point.
func (t Transform) MultiplyPoint(p Point) Point {
	m := &t.Matrix
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + t.Origin.X,
		Y: m[3]*p.X + m[4]*p.Y + m[5]*p.Z + t.Origin.Y,
		Z: m[6]*p.X + m[7]*p.Y + m[8]*p.Z + t.Origin.Z,
	}
}

// MultiplyVector applies only the linear part (no translation).
func (t Transform) MultiplyVector(v Vector) Vector {
	return t.Matrix.MultiplyVector(v)
}

// Multiply composes two transforms; the result applies other first.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		Matrix: t.Matrix.Multiply(other.Matrix),
		Origin: t.Matrix.MultiplyVector(other.Origin).Add(t.Origin),
	}
}

// Inverse returns the inverse map. It fails when the linear part is singular.
func (t Transform) Inverse() (Transform, error) {
	inverse, err := t.Matrix.Inverse()
	if err != nil {
		return Transform{}, errors.Wrap(err, "cannot invert transform")
	}
	return Transform{
		Matrix: inverse,
		Origin: inverse.MultiplyVector(t.Origin).Mul(-1),
	}, nil
}
