package coords

import "github.com/osuushi/polyops/internal"

// PointSlice presents an existing []Point as a Collection. It captures the
// slice; it does not copy it, so later writes to the slice are visible.
type PointSlice struct {
	points []Point
}

func NewPointSlice(points []Point) *PointSlice {
	return &PointSlice{points: points}
}

// NewPointSliceN views the first n points. Claiming more points than the
// slice holds is a programmer error and panics.
func NewPointSliceN(points []Point, n int) *PointSlice {
	if n < 0 || n > len(points) {
		internal.Fatalf("point slice of length %d cannot provide %d points", len(points), n)
	}
	return &PointSlice{points: points[:n]}
}

func (s *PointSlice) Length() int {
	return len(s.points)
}

func (s *PointSlice) valid(i int) bool {
	return i >= 0 && i < len(s.points)
}

func (s *PointSlice) PointAt(i int) (Point, bool) {
	if !s.valid(i) {
		return Point{}, false
	}
	return s.points[i], true
}

func (s *PointSlice) VectorAt(i int) (Vector, bool) {
	if !s.valid(i) {
		return Vector{}, false
	}
	return s.points[i].Vector(), true
}

func (s *PointSlice) VectorBetween(i, j int) (Vector, bool) {
	if !s.valid(i) || !s.valid(j) {
		return Vector{}, false
	}
	return s.points[j].Minus(s.points[i]), true
}

func (s *PointSlice) VectorFromOrigin(origin Point, j int) (Vector, bool) {
	if !s.valid(j) {
		return Vector{}, false
	}
	return s.points[j].Minus(origin), true
}

func (s *PointSlice) CrossProductOfTargets(i, j, k int) (Vector, bool) {
	if !s.valid(i) {
		return Vector{}, false
	}
	return s.CrossProductFromOrigin(s.points[i], j, k)
}

func (s *PointSlice) CrossProductFromOrigin(origin Point, j, k int) (Vector, bool) {
	if !s.valid(j) || !s.valid(k) {
		return Vector{}, false
	}
	return s.points[j].Minus(origin).Cross(s.points[k].Minus(origin)), true
}

func (s *PointSlice) AccumulateCrossProductOfTargets(i, j, k int, acc *Vector) {
	if !s.valid(i) || !s.valid(j) || !s.valid(k) {
		return
	}
	*acc = acc.Add(s.points[j].Minus(s.points[i]).Cross(s.points[k].Minus(s.points[i])))
}
