// Coordinate storage and planar polygon analysis for Go.
//
// Rings are read through the coords.Collection interface, so the same
// operations work on a growable coords.Buffer, a caller's []Point or the flat
// coordinates of a go-geom geometry. The polygon package computes area
// normals, centroids, turning direction, parity classification of points and
// second moments of area.
//
// The functions in this package are the error-returning entry points. The
// subpackages panic on precondition violations instead.
package polyops

import (
	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
	"github.com/osuushi/polyops/internal"
	"github.com/osuushi/polyops/polygon"
	"go.uber.org/zap"
)

type Point = geometry.Point
type Vector = geometry.Vector
type Matrix4d = geometry.Matrix4d
type Collection = coords.Collection
type Buffer = coords.Buffer
type PointSlice = coords.PointSlice
type Classification = polygon.Classification

const (
	Interior      = polygon.Interior
	Boundary      = polygon.Boundary
	Exterior      = polygon.Exterior
	Indeterminate = polygon.Indeterminate
)

// SetLogger routes the module's debug logging to l. Pass nil to silence it
// again.
func SetLogger(l *zap.Logger) {
	internal.SetLogger(l)
}

// Make an empty buffer with room for capacity points. A negative capacity is
// an error.
func NewBuffer(capacity int) (buffer *Buffer, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			buffer = nil
			err = recoveredErr
		}
	}()
	return coords.NewBuffer(capacity), nil
}

// Wrap the first n points of a slice as a collection, without copying. n must
// be within the slice.
func NewPointSliceN(points []Point, n int) (slice *PointSlice, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			slice = nil
			err = recoveredErr
		}
	}()
	return coords.NewPointSliceN(points, n), nil
}
