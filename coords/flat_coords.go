package coords

import (
	"github.com/osuushi/polyops/internal"
	geom "github.com/twpayne/go-geom"
)

// FlatCoords presents a go-geom flat coordinate slice as a Collection without
// copying it. Layouts without a z ordinate read as z = 0; any m ordinate is
// ignored.
type FlatCoords struct {
	flat   []float64
	stride int
	zIndex int
}

// NewFlatCoords wraps flat, interpreted with layout. A slice whose length is
// not a multiple of the layout stride is a programmer error and panics.
func NewFlatCoords(layout geom.Layout, flat []float64) *FlatCoords {
	stride := layout.Stride()
	if stride < 2 {
		internal.Fatalf("unsupported coordinate layout: %v", layout)
	}
	if len(flat)%stride != 0 {
		internal.Fatalf("flat coordinate length %d is not a multiple of stride %d", len(flat), stride)
	}
	return &FlatCoords{flat: flat, stride: stride, zIndex: layout.ZIndex()}
}

// NewFlatCoordsFromRing wraps the coordinates of a go-geom linear ring.
func NewFlatCoordsFromRing(ring *geom.LinearRing) *FlatCoords {
	return NewFlatCoords(ring.Layout(), ring.FlatCoords())
}

func (f *FlatCoords) Length() int {
	return len(f.flat) / f.stride
}

func (f *FlatCoords) valid(i int) bool {
	return i >= 0 && i < len(f.flat)/f.stride
}

func (f *FlatCoords) at(i int) Point {
	j := i * f.stride
	p := Point{X: f.flat[j], Y: f.flat[j+1]}
	if f.zIndex >= 0 {
		p.Z = f.flat[j+f.zIndex]
	}
	return p
}

func (f *FlatCoords) PointAt(i int) (Point, bool) {
	if !f.valid(i) {
		return Point{}, false
	}
	return f.at(i), true
}

func (f *FlatCoords) VectorAt(i int) (Vector, bool) {
	if !f.valid(i) {
		return Vector{}, false
	}
	return f.at(i).Vector(), true
}

func (f *FlatCoords) VectorBetween(i, j int) (Vector, bool) {
	if !f.valid(i) || !f.valid(j) {
		return Vector{}, false
	}
	return f.at(j).Minus(f.at(i)), true
}

func (f *FlatCoords) VectorFromOrigin(origin Point, j int) (Vector, bool) {
	if !f.valid(j) {
		return Vector{}, false
	}
	return f.at(j).Minus(origin), true
}

func (f *FlatCoords) CrossProductOfTargets(i, j, k int) (Vector, bool) {
	if !f.valid(i) {
		return Vector{}, false
	}
	return f.CrossProductFromOrigin(f.at(i), j, k)
}

func (f *FlatCoords) CrossProductFromOrigin(origin Point, j, k int) (Vector, bool) {
	if !f.valid(j) || !f.valid(k) {
		return Vector{}, false
	}
	return f.at(j).Minus(origin).Cross(f.at(k).Minus(origin)), true
}

func (f *FlatCoords) AccumulateCrossProductOfTargets(i, j, k int, acc *Vector) {
	if !f.valid(i) || !f.valid(j) || !f.valid(k) {
		return
	}
	origin := f.at(i)
	*acc = acc.Add(f.at(j).Minus(origin).Cross(f.at(k).Minus(origin)))
}
