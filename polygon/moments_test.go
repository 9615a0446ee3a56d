package polygon

import (
	"testing"

	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
	"github.com/stretchr/testify/assert"
)

// Exact second moment products of the rectangle [x0, x1] x [y0, y1] about the
// global origin.
func rectangleMoments(x0, x1, y0, y1 float64) geometry.Matrix4d {
	area := (x1 - x0) * (y1 - y0)
	xx := (x1*x1*x1 - x0*x0*x0) / 3 * (y1 - y0)
	yy := (y1*y1*y1 - y0*y0*y0) / 3 * (x1 - x0)
	xy := (x1*x1 - x0*x0) / 2 * (y1*y1 - y0*y0) / 2
	x := (x1*x1 - x0*x0) / 2 * (y1 - y0)
	y := (y1*y1 - y0*y0) / 2 * (x1 - x0)
	return geometry.Matrix4dFromRows(
		xx, xy, 0, x,
		xy, yy, 0, y,
		0, 0, 0, 0,
		x, y, 0, area,
	)
}

func sumMoments(parts ...geometry.Matrix4d) geometry.Matrix4d {
	var sum geometry.Matrix4d
	for i := range parts {
		sum.AddScaled(&parts[i], 1)
	}
	return sum
}

func assertMomentsInDelta(t *testing.T, expected, actual geometry.Matrix4d, msgAndArgs ...interface{}) {
	t.Helper()
	assert.LessOrEqual(t, expected.MaxAbsDiff(&actual), 1e-11, msgAndArgs...)
}

func TestSecondMomentProducts(t *testing.T) {
	cases := []struct {
		name     string
		ring     *coords.Buffer
		expected geometry.Matrix4d
	}{
		{"square", loadFixture(t, "square"), rectangleMoments(0, 1, 0, 1)},
		{"lshape", loadFixture(t, "lshape"), sumMoments(
			rectangleMoments(0, 2, 0, 1),
			rectangleMoments(0, 1, 1, 2),
		)},
		{"comb", loadFixture(t, "comb"), sumMoments(
			rectangleMoments(0, 7, 0, 1),
			rectangleMoments(0, 1, 1, 4),
			rectangleMoments(2, 3, 1, 4),
			rectangleMoments(4, 5, 1, 4),
			rectangleMoments(6, 7, 1, 4),
		)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assertMomentsInDelta(t, tc.expected, SecondMomentProducts(tc.ring, Point{}))
			// Orientation, start vertex and closure do not matter.
			assertMomentsInDelta(t, tc.expected, SecondMomentProducts(reversed(tc.ring), Point{}), "reversed")
			assertMomentsInDelta(t, tc.expected, SecondMomentProducts(closed(tc.ring), Point{}), "closed")
			assertMomentsInDelta(t, tc.expected, SecondMomentProducts(rotated(tc.ring, 3), Point{}), "rotated")
		})
	}
}

func TestSecondMomentProductsAboutCentroid(t *testing.T) {
	square := loadFixture(t, "square")
	expected := geometry.Matrix4dFromRows(
		1.0/12, 0, 0, 0,
		0, 1.0/12, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
	)
	assertMomentsInDelta(t, expected, SecondMomentProducts(square, Point{X: 0.5, Y: 0.5}))
}

func TestSecondMomentProductsAccumulate(t *testing.T) {
	square := loadFixture(t, "square")
	var moments geometry.Matrix4d
	AccumulateSecondMomentProducts(square, Point{}, &moments)
	AccumulateSecondMomentProducts(square, Point{}, &moments)
	single := rectangleMoments(0, 1, 0, 1)
	var doubled geometry.Matrix4d
	doubled.AddScaled(&single, 2)
	assertMomentsInDelta(t, doubled, moments)
}

func TestSecondMomentProductsIn3D(t *testing.T) {
	// The unit square stood up in the xz plane, with its first vertex at (3, 4, 5).
	transform := geometry.NewTransform(geometry.Matrix3dFromColumns(
		Vector{X: 1}, Vector{Z: 1}, Vector{Y: -1},
	), Vector{X: 3, Y: 4, Z: 5})
	square := loadFixture(t, "square")
	square.TransformInPlace(transform)

	expected := geometry.Matrix4dFromRows(
		1.0/3, 0, 1.0/4, 1.0/2,
		0, 0, 0, 0,
		1.0/4, 0, 1.0/3, 1.0/2,
		1.0/2, 0, 1.0/2, 1,
	)
	assertMomentsInDelta(t, expected, SecondMomentProducts(square, Point{X: 3, Y: 4, Z: 5}))
}

func TestSecondMomentProductsOfDegenerateRings(t *testing.T) {
	for name, ring := range map[string]Collection{
		"bowtie":     loadFixture(t, "bowtie"),
		"two points": coords.NewPointSlice([]Point{{X: 1}, {Y: 1}}),
		"collinear":  coords.NewPointSlice([]Point{{X: 0}, {X: 1}, {X: 2}}),
	} {
		assert.Equal(t, geometry.Matrix4d{}, SecondMomentProducts(ring, Point{}), name)
	}
}
