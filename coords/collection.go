// Package coords holds ordered sequences of 3-D coordinates behind a single
// indexed access contract, so polygon algorithms never need to know how the
// coordinates are stored.
package coords

import "github.com/osuushi/polyops/geometry"

type (
	Point  = geometry.Point
	Vector = geometry.Vector
)

// Collection is an ordered, indexed sequence of 3-D coordinates.
//
// Every index taking method reports an out of range index through its bool
// result (or, for the accumulating method, by doing nothing). None of them
// panic.
type Collection interface {
	// Length is the number of coordinates. It is never negative.
	Length() int
	PointAt(i int) (Point, bool)
	VectorAt(i int) (Vector, bool)
	// VectorBetween returns the vector from element i to element j.
	VectorBetween(i, j int) (Vector, bool)
	// VectorFromOrigin returns the vector from origin to element j.
	VectorFromOrigin(origin Point, j int) (Vector, bool)
	// CrossProductOfTargets returns (j - i) x (k - i).
	CrossProductOfTargets(i, j, k int) (Vector, bool)
	// CrossProductFromOrigin returns (j - origin) x (k - origin).
	CrossProductFromOrigin(origin Point, j, k int) (Vector, bool)
	// AccumulateCrossProductOfTargets adds (j - i) x (k - i) into acc. It is a
	// no-op if any index is invalid.
	AccumulateCrossProductOfTargets(i, j, k int, acc *Vector)
}

func crossFromComponents(ux, uy, uz, vx, vy, vz float64) Vector {
	return Vector{
		X: uy*vz - uz*vy,
		Y: uz*vx - ux*vz,
		Z: ux*vy - uy*vx,
	}
}
