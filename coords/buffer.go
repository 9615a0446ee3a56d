package coords

import (
	"math"
	"sort"

	"github.com/osuushi/polyops/geometry"
	"github.com/osuushi/polyops/internal"
	"go.uber.org/zap"
)

// Buffer is a growable array of 3-D points packed into a single []float64 as
// x0, y0, z0, x1, y1, z1, ...
//
// The backing block always holds 3*Capacity() values, of which the first
// 3*Length() are in use. Appending past the capacity reallocates to twice the
// required size. Shrinking (Pop, Resize down, Clear) never reallocates, so a
// buffer can be refilled in a tight loop without allocation churn. Values
// beyond Length() are garbage.
//
// A Buffer has no internal scratch state: concurrent readers are fine as long
// as nobody mutates it at the same time. There is no built-in lock.
type Buffer struct {
	data  []float64
	inUse int
}

// NewBuffer creates an empty buffer with room for capacityHint points.
func NewBuffer(capacityHint int) *Buffer {
	if capacityHint < 0 {
		internal.Fatalf("negative buffer capacity: %d", capacityHint)
	}
	return &Buffer{data: make([]float64, 3*capacityHint)}
}

// NewBufferFromPoints creates a tight buffer holding a copy of points.
func NewBufferFromPoints(points []Point) *Buffer {
	b := NewBuffer(len(points))
	b.PushAll(points)
	return b
}

// NewBufferFromCollection creates a tight buffer holding a copy of c.
func NewBufferFromCollection(c Collection) *Buffer {
	b := NewBuffer(c.Length())
	b.PushFromCollection(c)
	return b
}

func (b *Buffer) Length() int {
	return b.inUse
}

// Capacity is the number of points the buffer can hold without reallocating.
func (b *Buffer) Capacity() int {
	return len(b.data) / 3
}

// EnsureCapacity grows (never shrinks) storage to hold at least n points,
// preserving the content and length.
func (b *Buffer) EnsureCapacity(n int) {
	if n < 0 {
		internal.Fatalf("negative buffer capacity: %d", n)
	}
	b.reserve(n, false)
}

func (b *Buffer) reserve(n int, applyGrowth bool) {
	if n <= b.Capacity() {
		return
	}
	previous := b.Capacity()
	if applyGrowth {
		n *= 2
	}
	data := make([]float64, 3*n)
	copy(data, b.data[:3*b.inUse])
	b.data = data
	internal.Logger().Debug("coordinate buffer reallocated",
		zap.Int("from", previous),
		zap.Int("to", n),
		zap.Int("inUse", b.inUse),
	)
}

func (b *Buffer) Push(p Point) {
	b.PushXYZ(p.X, p.Y, p.Z)
}

func (b *Buffer) PushXYZ(x, y, z float64) {
	b.reserve(b.inUse+1, true)
	i := 3 * b.inUse
	b.data[i] = x
	b.data[i+1] = y
	b.data[i+2] = z
	b.inUse++
}

func (b *Buffer) PushAll(points []Point) {
	b.reserve(b.inUse+len(points), true)
	for _, p := range points {
		i := 3 * b.inUse
		b.data[i] = p.X
		b.data[i+1] = p.Y
		b.data[i+2] = p.Z
		b.inUse++
	}
}

// PushFromCollection appends every point of c.
func (b *Buffer) PushFromCollection(c Collection) {
	n := c.Length()
	b.reserve(b.inUse+n, true)
	for j := 0; j < n; j++ {
		if p, ok := c.PointAt(j); ok {
			b.Push(p)
		}
	}
}

// PushWrap appends copies of the first k points, e.g. to close a ring for an
// algorithm that wants to see the wraparound edges without index arithmetic.
// It returns false, doing nothing, if the buffer has fewer than k points.
func (b *Buffer) PushWrap(k int) bool {
	if k < 0 || k > b.inUse {
		return false
	}
	b.reserve(b.inUse+k, true)
	copy(b.data[3*b.inUse:3*(b.inUse+k)], b.data[:3*k])
	b.inUse += k
	return true
}

// Pop removes the last point. It never reallocates.
func (b *Buffer) Pop() {
	if b.inUse > 0 {
		b.inUse--
	}
}

// Clear sets the length to zero and keeps the capacity.
func (b *Buffer) Clear() {
	b.inUse = 0
}

// Resize sets the length to n. Shrinking only drops the count. Growing exposes
// slots whose content is undefined unless padWithZero is set.
func (b *Buffer) Resize(n int, padWithZero bool) {
	if n < 0 {
		internal.Fatalf("negative buffer length: %d", n)
	}
	if n <= b.inUse {
		b.inUse = n
		return
	}
	b.reserve(n, false)
	if padWithZero {
		tail := b.data[3*b.inUse : 3*n]
		for i := range tail {
			tail[i] = 0
		}
	}
	b.inUse = n
}

// Clone returns a deep copy whose capacity equals its length.
func (b *Buffer) Clone() *Buffer {
	data := make([]float64, 3*b.inUse)
	copy(data, b.data)
	return &Buffer{data: data, inUse: b.inUse}
}

func (b *Buffer) valid(i int) bool {
	return i >= 0 && i < b.inUse
}

func (b *Buffer) at(i int) Point {
	j := 3 * i
	return Point{X: b.data[j], Y: b.data[j+1], Z: b.data[j+2]}
}

// SetAt overwrites point i. It returns false for an invalid index.
func (b *Buffer) SetAt(i int, p Point) bool {
	if !b.valid(i) {
		return false
	}
	j := 3 * i
	b.data[j] = p.X
	b.data[j+1] = p.Y
	b.data[j+2] = p.Z
	return true
}

// GetPointAt is PointAt under the name used by the mutation API.
func (b *Buffer) GetPointAt(i int) (Point, bool) {
	return b.PointAt(i)
}

// Component returns coordinate axis (0, 1 or 2) of point i.
func (b *Buffer) Component(i, axis int) (float64, bool) {
	if !b.valid(i) || axis < 0 || axis > 2 {
		return 0, false
	}
	return b.data[3*i+axis], true
}

func (b *Buffer) Front() (Point, bool) {
	return b.PointAt(0)
}

func (b *Buffer) Back() (Point, bool) {
	return b.PointAt(b.inUse - 1)
}

// Points copies the in-use points out.
func (b *Buffer) Points() []Point {
	result := make([]Point, b.inUse)
	for i := range result {
		result[i] = b.at(i)
	}
	return result
}

// Collection contract, read directly from the packed data.

func (b *Buffer) PointAt(i int) (Point, bool) {
	if !b.valid(i) {
		return Point{}, false
	}
	return b.at(i), true
}

func (b *Buffer) VectorAt(i int) (Vector, bool) {
	if !b.valid(i) {
		return Vector{}, false
	}
	j := 3 * i
	return Vector{X: b.data[j], Y: b.data[j+1], Z: b.data[j+2]}, true
}

func (b *Buffer) VectorBetween(i, j int) (Vector, bool) {
	if !b.valid(i) || !b.valid(j) {
		return Vector{}, false
	}
	i, j = 3*i, 3*j
	return Vector{
		X: b.data[j] - b.data[i],
		Y: b.data[j+1] - b.data[i+1],
		Z: b.data[j+2] - b.data[i+2],
	}, true
}

func (b *Buffer) VectorFromOrigin(origin Point, j int) (Vector, bool) {
	if !b.valid(j) {
		return Vector{}, false
	}
	j *= 3
	return Vector{
		X: b.data[j] - origin.X,
		Y: b.data[j+1] - origin.Y,
		Z: b.data[j+2] - origin.Z,
	}, true
}

func (b *Buffer) CrossProductOfTargets(i, j, k int) (Vector, bool) {
	if !b.valid(i) {
		return Vector{}, false
	}
	return b.CrossProductFromOrigin(b.at(i), j, k)
}

func (b *Buffer) CrossProductFromOrigin(origin Point, j, k int) (Vector, bool) {
	if !b.valid(j) || !b.valid(k) {
		return Vector{}, false
	}
	j, k = 3*j, 3*k
	return crossFromComponents(
		b.data[j]-origin.X, b.data[j+1]-origin.Y, b.data[j+2]-origin.Z,
		b.data[k]-origin.X, b.data[k+1]-origin.Y, b.data[k+2]-origin.Z,
	), true
}

func (b *Buffer) AccumulateCrossProductOfTargets(i, j, k int, acc *Vector) {
	if !b.valid(i) || !b.valid(j) || !b.valid(k) {
		return
	}
	i, j, k = 3*i, 3*j, 3*k
	d := b.data
	cross := crossFromComponents(
		d[j]-d[i], d[j+1]-d[i+1], d[j+2]-d[i+2],
		d[k]-d[i], d[k+1]-d[i+1], d[k+2]-d[i+2],
	)
	acc.X += cross.X
	acc.Y += cross.Y
	acc.Z += cross.Z
}

// Whole buffer operations. These run as flat loops over the packed values.

// TransformInPlace applies t to every point.
func (b *Buffer) TransformInPlace(t geometry.Transform) {
	m := &t.Matrix
	o := t.Origin
	d := b.data[:3*b.inUse]
	for i := 0; i < len(d); i += 3 {
		x, y, z := d[i], d[i+1], d[i+2]
		d[i] = m[0]*x + m[1]*y + m[2]*z + o.X
		d[i+1] = m[3]*x + m[4]*y + m[5]*z + o.Y
		d[i+2] = m[6]*x + m[7]*y + m[8]*z + o.Z
	}
}

// TryTransformInverseInPlace applies the inverse of t to every point. If t is
// singular the buffer is left untouched and false is returned.
func (b *Buffer) TryTransformInverseInPlace(t geometry.Transform) bool {
	inverse, err := t.Inverse()
	if err != nil {
		internal.Logger().Debug("inverse transform refused", zap.Error(err), zap.Int("points", b.inUse))
		return false
	}
	b.TransformInPlace(inverse)
	return true
}

// MultiplyMatrix3dInPlace applies a linear map (no translation) to every point.
func (b *Buffer) MultiplyMatrix3dInPlace(m geometry.Matrix3d) {
	b.TransformInPlace(geometry.NewTransform(m, Vector{}))
}

// ExtendRange extends r by every point, first mapped through t if t is not nil.
func (b *Buffer) ExtendRange(r *geometry.Range3d, t *geometry.Transform) {
	d := b.data[:3*b.inUse]
	if t == nil {
		for i := 0; i < len(d); i += 3 {
			r.ExtendXYZ(d[i], d[i+1], d[i+2])
		}
		return
	}
	m := &t.Matrix
	o := t.Origin
	for i := 0; i < len(d); i += 3 {
		x, y, z := d[i], d[i+1], d[i+2]
		r.ExtendXYZ(
			m[0]*x+m[1]*y+m[2]*z+o.X,
			m[3]*x+m[4]*y+m[5]*z+o.Y,
			m[6]*x+m[7]*y+m[8]*z+o.Z,
		)
	}
}

// Range returns the bounding box of the points (null when empty).
func (b *Buffer) Range() geometry.Range3d {
	r := geometry.NullRange()
	b.ExtendRange(&r, nil)
	return r
}

// SumOfSegmentLengths is the length of the open polyline through the points.
func (b *Buffer) SumOfSegmentLengths() float64 {
	var sum float64
	d := b.data[:3*b.inUse]
	for i := 3; i < len(d); i += 3 {
		dx := d[i] - d[i-3]
		dy := d[i+1] - d[i-2]
		dz := d[i+2] - d[i-1]
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum
}

// IsWithinToleranceOfPlane reports whether every point is within tol of plane.
func (b *Buffer) IsWithinToleranceOfPlane(plane geometry.Plane, tol float64) bool {
	for i := 0; i < b.inUse; i++ {
		if math.Abs(plane.Altitude(b.at(i))) > tol {
			return false
		}
	}
	return true
}

// SignedAreaXY is the area of the ring projected to xy: positive when the
// points run counterclockwise. A closing duplicate point is harmless.
func (b *Buffer) SignedAreaXY() float64 {
	if b.inUse < 3 {
		return 0
	}
	d := b.data[:3*b.inUse]
	x0, y0 := d[0], d[1]
	var sum float64
	ux, uy := d[3]-x0, d[4]-y0
	for i := 6; i < len(d); i += 3 {
		vx, vy := d[i]-x0, d[i+1]-y0
		sum += ux*vy - uy*vx
		ux, uy = vx, vy
	}
	return 0.5 * sum
}

// LexicalSortIndices returns the point indices ordered by x, then y, then z.
// Identical points keep their original relative order.
func (b *Buffer) LexicalSortIndices() []int {
	indices := make([]int, b.inUse)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(p, q int) bool {
		return b.at(indices[p]).Vector().Cmp(b.at(indices[q]).Vector()) < 0
	})
	return indices
}

// ReverseInPlace reverses the order of the points.
func (b *Buffer) ReverseInPlace() {
	d := b.data
	for i, j := 0, b.inUse-1; i < j; i, j = i+1, j-1 {
		p, q := 3*i, 3*j
		d[p], d[q] = d[q], d[p]
		d[p+1], d[q+1] = d[q+1], d[p+1]
		d[p+2], d[q+2] = d[q+2], d[p+2]
	}
}

func (b *Buffer) DistanceIndexIndex(i, j int) (float64, bool) {
	d2, ok := b.DistanceSquaredIndexIndex(i, j)
	return math.Sqrt(d2), ok
}

func (b *Buffer) DistanceSquaredIndexIndex(i, j int) (float64, bool) {
	v, ok := b.VectorBetween(i, j)
	if !ok {
		return 0, false
	}
	return v.Norm2(), true
}

// InterpolateIndexIndex returns the point at fraction along the segment from
// point i to point j.
func (b *Buffer) InterpolateIndexIndex(i int, fraction float64, j int) (Point, bool) {
	if !b.valid(i) || !b.valid(j) {
		return Point{}, false
	}
	return b.at(i).Interpolate(fraction, b.at(j)), true
}

// RemoveClosurePoints drops trailing points within tol of the first point and
// returns how many were removed. At least one point is always kept.
func (b *Buffer) RemoveClosurePoints(tol float64) int {
	removed := 0
	for b.inUse > 1 && b.at(b.inUse-1).IsAlmostEqual(b.at(0), tol) {
		b.inUse--
		removed++
	}
	return removed
}
