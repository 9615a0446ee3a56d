package polygon

import (
	"github.com/osuushi/polyops/geometry"
	"github.com/osuushi/polyops/internal"
	"go.uber.org/zap"
)

// CentroidAreaNormalResult describes a planar region: its centroid, its unit
// normal (right hand rule on the traversal) and its area.
type CentroidAreaNormalResult struct {
	Centroid Point
	Normal   Vector
	Area     float64
}

// CentroidAreaNormal computes the centroid from the fan triangles at vertex 0,
// each weighted by its own signed area, so reflex regions of a non-convex ring
// subtract correctly. The result is indeterminate when the net area is
// negligible compared to the total unsigned area of the fan.
func (w *Workspace) CentroidAreaNormal(c Collection) (CentroidAreaNormalResult, bool) {
	n := c.Length()
	if n < 3 {
		return CentroidAreaNormalResult{}, false
	}
	origin, _ := c.PointAt(0)

	if n == 3 {
		cross, _ := c.CrossProductOfTargets(0, 1, 2)
		normal, ok := geometry.TryNormalize(cross)
		if !ok {
			logIndeterminateCentroid(n, cross.Norm())
			return CentroidAreaNormalResult{}, false
		}
		p1, _ := c.PointAt(1)
		p2, _ := c.PointAt(2)
		return CentroidAreaNormalResult{
			Centroid: Point{
				X: (origin.X + p1.X + p2.X) / 3,
				Y: (origin.Y + p1.Y + p2.Y) / 3,
				Z: (origin.Z + p1.Z + p2.Z) / 3,
			},
			Normal: normal,
			Area:   0.5 * cross.Norm(),
		}, true
	}

	// First pass: net normal, and the unsigned total for the relative test.
	w.normal = Vector{}
	var unsignedSum float64
	for i := 2; i < n; i++ {
		cross, _ := c.CrossProductOfTargets(0, i-1, i)
		w.normal = w.normal.Add(cross)
		unsignedSum += cross.Norm()
	}
	twiceArea := w.normal.Norm()
	normal, ok := geometry.TryNormalize(w.normal)
	if !ok || twiceArea <= geometry.SmallFraction*unsignedSum {
		logIndeterminateCentroid(n, twiceArea)
		return CentroidAreaNormalResult{}, false
	}

	// Second pass: each fan triangle's centroid (relative to vertex 0) is
	// (v0 + v1) / 3, weighted by its twice-area signed against the net normal.
	w.centroidSum = Vector{}
	v0, _ := c.VectorBetween(0, 1)
	for i := 2; i < n; i++ {
		v1, _ := c.VectorBetween(0, i)
		weight := normal.Dot(v0.Cross(v1))
		w.centroidSum = w.centroidSum.Add(v0.Add(v1).Mul(weight))
		v0 = v1
	}
	divisor := 3 * twiceArea
	return CentroidAreaNormalResult{
		Centroid: Point{
			X: origin.X + w.centroidSum.X/divisor,
			Y: origin.Y + w.centroidSum.Y/divisor,
			Z: origin.Z + w.centroidSum.Z/divisor,
		},
		Normal:   normal,
		Area:     0.5 * twiceArea,
	}, true
}

func logIndeterminateCentroid(n int, twiceArea float64) {
	internal.Logger().Debug("centroid indeterminate",
		zap.Int("vertices", n),
		zap.Float64("twiceArea", twiceArea),
	)
}
