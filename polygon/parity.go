package polygon

import (
	"math"

	"github.com/osuushi/polyops/internal"
	"go.uber.org/zap"
)

// Classification is the position of a point relative to a ring.
type Classification int

const (
	// Indeterminate means no ray could be cast cleanly; the point was not
	// classified.
	Indeterminate Classification = -2
	Exterior      Classification = -1
	Boundary      Classification = 0
	Interior      Classification = 1
)

func (c Classification) String() string {
	switch c {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	case Indeterminate:
		return "indeterminate"
	}
	return "invalid"
}

// Rotated rays are tried at multiples of the golden angle. It is an irrational
// fraction of a turn, so no two attempts share a direction.
var rayAngleStep = math.Pi * (3 - math.Sqrt(5))

// Number of rotated rays tried before giving up.
const maxRotatedRays = 10

// ClassifyPointParity classifies q against the ring projected to xy, using tol
// both for "this vertex is on the ray" and for "this crossing is at q".
//
// A ray is cast along +x, then along +y, then along up to ten rotated
// directions. A ray is abandoned (and the next one tried) whenever a vertex
// lies within tol of its line, since the crossing count would be ambiguous.
// On a clean ray, a crossing within tol of q means Boundary; otherwise the
// parity of the crossings beyond q decides Interior or Exterior. If no ray is
// clean the result is Indeterminate; the point is never guessed.
func ClassifyPointParity(q Point, c Collection, tol float64) Classification {
	if result, ok := castParityRay(q, c, tol, 1, 0, false); ok {
		return result
	}
	if result, ok := castParityRay(q, c, tol, 0, 1, false); ok {
		return result
	}
	for attempt := 0; attempt < maxRotatedRays; attempt++ {
		theta := float64(attempt+1) * rayAngleStep
		if result, ok := castParityRay(q, c, tol, math.Cos(theta), math.Sin(theta), attempt == 0); ok {
			return result
		}
	}
	internal.Logger().Debug("point classification indeterminate",
		zap.Float64("x", q.X),
		zap.Float64("y", q.Y),
		zap.Int("vertices", c.Length()),
		zap.Float64("tol", tol),
	)
	return Indeterminate
}

// ClassifyPointParityXY is ClassifyPointParity for the point (x, y).
func ClassifyPointParityXY(x, y float64, c Collection, tol float64) Classification {
	return ClassifyPointParity(Point{X: x, Y: y}, c, tol)
}

// castParityRay casts a ray from q along the unit direction (ux, uy). In the
// ray's frame each vertex has an "along" coordinate and an "across"
// coordinate; an edge crosses the ray's line where across changes sign.
//
// When checkVertexHit is set, a vertex within tol of q in both coordinates
// short-circuits to Boundary, since every ray through q would be abandoned.
func castParityRay(q Point, c Collection, tol, ux, uy float64, checkVertexHit bool) (Classification, bool) {
	n := c.Length()
	frame := func(i int) (along, across float64) {
		p, _ := c.PointAt(i)
		dx, dy := p.X-q.X, p.Y-q.Y
		return dx*ux + dy*uy, dy*ux - dx*uy
	}

	if checkVertexHit {
		for i := 0; i < n; i++ {
			if along, across := frame(i); math.Abs(along) <= tol && math.Abs(across) <= tol {
				return Boundary, true
			}
		}
	}
	for i := 0; i < n; i++ {
		if _, across := frame(i); math.Abs(across) <= tol {
			return Indeterminate, false
		}
	}

	// No across value is zero now, so a sign change is a strict crossing. A
	// closing duplicate vertex forms an edge with no sign change.
	crossings := 0
	along0, across0 := frame(n - 1)
	for i := 0; i < n; i++ {
		along1, across1 := frame(i)
		if (across0 < 0) != (across1 < 0) {
			s := across0 / (across0 - across1)
			crossing := along0 + s*(along1-along0)
			if math.Abs(crossing) <= tol {
				return Boundary, true
			}
			if crossing > 0 {
				crossings++
			}
		}
		along0, across0 = along1, across1
	}
	if crossings%2 == 1 {
		return Interior, true
	}
	return Exterior, true
}
