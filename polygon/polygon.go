// Package polygon analyses rings: ordered sequences of at least three
// coordinates read through a coords.Collection and interpreted as a closed
// polygon boundary. A ring may or may not repeat its first point at the end;
// every operation gives the same answer either way.
//
// No operation panics or errors on degenerate geometry (self intersecting,
// zero area, collinear). Where no meaningful answer exists, the result says so
// with an ok flag or the Indeterminate classification.
package polygon

import (
	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
)

type (
	Point      = geometry.Point
	Vector     = geometry.Vector
	Collection = coords.Collection
)

// Workspace holds the temporary vectors and matrices the polygon operations
// write into, so repeated calls do not allocate.
//
// A Workspace is not safe for concurrent use: two goroutines must not call
// methods on the same Workspace at once. The package level functions each use
// a fresh Workspace of their own and are therefore reentrant.
type Workspace struct {
	normal      Vector
	centroidSum Vector
	placement   geometry.Matrix4d
	weighted    geometry.Matrix4d
	local       geometry.Matrix4d
}

// AreaNormal returns a vector normal to the ring whose length is its area.
func AreaNormal(c Collection) Vector {
	var w Workspace
	return w.AreaNormal(c)
}

// Area is the magnitude of AreaNormal.
func Area(c Collection) float64 {
	var w Workspace
	return w.AreaNormal(c).Norm()
}

// CentroidAreaNormal returns the area weighted centroid, unit normal and area
// of the ring. It returns false when the area is too small to divide by.
func CentroidAreaNormal(c Collection) (CentroidAreaNormalResult, bool) {
	var w Workspace
	return w.CentroidAreaNormal(c)
}

// AccumulateSecondMomentProducts adds the second moment products of the ring's
// area, taken about origin, into moments.
func AccumulateSecondMomentProducts(c Collection, origin Point, moments *geometry.Matrix4d) {
	var w Workspace
	w.AccumulateSecondMomentProducts(c, origin, moments)
}

// SecondMomentProducts returns the second moment products of the ring's area
// about origin.
func SecondMomentProducts(c Collection, origin Point) geometry.Matrix4d {
	var moments geometry.Matrix4d
	AccumulateSecondMomentProducts(c, origin, &moments)
	return moments
}
