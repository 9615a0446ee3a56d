package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// ErrSingularMatrix is returned when a matrix has no inverse.
var ErrSingularMatrix = errors.New("matrix is singular")

// Matrix3d is a 3x3 matrix in row-major order:
//
//	| 0  1  2 |
//	| 3  4  5 |
//	| 6  7  8 |
type Matrix3d [9]float64

// Identity3d returns the identity matrix.
func Identity3d() Matrix3d {
	return Matrix3d{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Scale3d creates a scaling matrix.
func Scale3d(x, y, z float64) Matrix3d {
	return Matrix3d{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

// RotationZ creates a rotation about the z axis (angle in radians).
func RotationZ(angle float64) Matrix3d {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3d{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Matrix3dFromColumns builds a matrix whose columns are u, v and w.
func Matrix3dFromColumns(u, v, w Vector) Matrix3d {
	return Matrix3d{
		u.X, v.X, w.X,
		u.Y, v.Y, w.Y,
		u.Z, v.Z, w.Z,
	}
}

func (m Matrix3d) At(row, col int) float64 {
	return m[3*row+col]
}

// Multiply multiplies two matrices (m * other).
func (m Matrix3d) Multiply(other Matrix3d) Matrix3d {
	var result Matrix3d
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[3*row+col] = m[3*row]*other[col] + m[3*row+1]*other[3+col] + m[3*row+2]*other[6+col]
		}
	}
	return result
}

func (m Matrix3d) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Matrix3d) Transpose() Matrix3d {
	return Matrix3d{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Matrix3d) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse matrix, or ErrSingularMatrix when the
// determinant is negligible compared to the product of the column lengths.
func (m Matrix3d) Inverse() (Matrix3d, error) {
	// Cofactors, transposed into the adjugate as we go.
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c00 + m[1]*c01 + m[2]*c02

	scale := m.columnNorm(0) * m.columnNorm(1) * m.columnNorm(2)
	if det == 0 || math.Abs(det) <= SmallFraction*scale {
		return Matrix3d{}, ErrSingularMatrix
	}
	invDet := 1.0 / det
	return Matrix3d{
		c00 * invDet,
		(m[2]*m[7] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[2]*m[4]) * invDet,
		c01 * invDet,
		(m[0]*m[8] - m[2]*m[6]) * invDet,
		(m[2]*m[3] - m[0]*m[5]) * invDet,
		c02 * invDet,
		(m[1]*m[6] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[1]*m[3]) * invDet,
	}, nil
}

func (m Matrix3d) columnNorm(col int) float64 {
	return math.Sqrt(m[col]*m[col] + m[3+col]*m[3+col] + m[6+col]*m[6+col])
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix3d) IsIdentity() bool {
	return m == Identity3d()
}
