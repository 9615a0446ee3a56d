package polygon

import (
	"fmt"
	"math"
	"testing"

	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
	"github.com/stretchr/testify/assert"
	geom "github.com/twpayne/go-geom"
)

const epsilon = 1e-12

func assertVectorInDelta(t *testing.T, expected, actual Vector, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func TestUnitSquareArea(t *testing.T) {
	square := loadFixture(t, "square")
	assert.Equal(t, 1.0, AreaXY(square))
	assert.Equal(t, Vector{X: 0, Y: 0, Z: 1}, AreaNormal(square))
	assert.Equal(t, 1.0, Area(square))

	assert.Equal(t, -1.0, AreaXY(reversed(square)))
	assert.Equal(t, Vector{X: 0, Y: 0, Z: -1}, AreaNormal(reversed(square)))
}

func TestTriangleAreaNormal(t *testing.T) {
	triangle := coords.NewPointSlice([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	assert.Equal(t, Vector{Z: 0.5}, AreaNormal(triangle))
	assert.Equal(t, 0.5, AreaXY(triangle))
}

func TestAreaNormalIsInvariantUnderRotation(t *testing.T) {
	for _, name := range fixtureNames {
		ring := loadFixture(t, name)
		expected := AreaNormal(ring)
		for k := 1; k < ring.Length(); k++ {
			assertVectorInDelta(t, expected, AreaNormal(rotated(ring, k)), epsilon, "%s rotated by %d", name, k)
		}
	}
}

func TestReversalNegatesAreaNormal(t *testing.T) {
	for _, name := range fixtureNames {
		t.Run(name, func(t *testing.T) {
			ring := loadFixture(t, name)
			normal := AreaNormal(ring)
			assertVectorInDelta(t, normal.Mul(-1), AreaNormal(reversed(ring)), epsilon)
			assert.InDelta(t, Area(ring), Area(reversed(ring)), epsilon)
			assert.InDelta(t, -AreaXY(ring), AreaXY(reversed(ring)), epsilon)
		})
	}
}

func TestClosurePointDoesNotChangeArea(t *testing.T) {
	for _, name := range fixtureNames {
		ring := loadFixture(t, name)
		assert.Equal(t, AreaNormal(ring), AreaNormal(closed(ring)), name)
		assert.Equal(t, AreaXY(ring), AreaXY(closed(ring)), name)
	}
}

func TestNonConvexAreas(t *testing.T) {
	assert.InDelta(t, 3, AreaXY(loadFixture(t, "lshape")), epsilon)
	assert.InDelta(t, 19, AreaXY(loadFixture(t, "comb")), epsilon)
	assert.InDelta(t, 50*math.Sin(math.Pi/5), AreaXY(simpleStar()), epsilon)

	// The fan from vertex 0 of the comb has reversed triangles
	comb := loadFixture(t, "comb")
	assert.Greater(t, SumTriangleAreasXY(comb), AreaXY(comb))
	assert.InDelta(t, 1, SumTriangleAreasXY(loadFixture(t, "square")), epsilon)
}

func TestBowtieAreaCancels(t *testing.T) {
	bowtie := loadFixture(t, "bowtie")
	assert.InDelta(t, 0, Area(bowtie), epsilon)
	assert.InDelta(t, 0, AreaXY(bowtie), epsilon)
	assert.InDelta(t, 4, SumTriangleAreasXY(bowtie), epsilon)
}

func TestDegenerateAreas(t *testing.T) {
	for n := 0; n < 3; n++ {
		ring := coords.NewPointSlice([]Point{{X: 1}, {Y: 1}, {Z: 1}}[:n])
		assert.Equal(t, Vector{}, AreaNormal(ring))
		assert.Equal(t, 0.0, AreaXY(ring))
		assert.Equal(t, 0.0, SumTriangleAreasXY(ring))
	}
	collinear := coords.NewPointSlice([]Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	assert.Equal(t, 0.0, Area(collinear))
}

func TestAreaNormalIn3D(t *testing.T) {
	// The unit square stood up in the xz plane, traversed so the normal is -y.
	transform := geometry.NewTransform(geometry.Matrix3dFromColumns(
		Vector{X: 1}, Vector{Z: 1}, Vector{Y: -1},
	), Vector{X: 3, Y: 4, Z: 5})
	square := loadFixture(t, "square")
	square.TransformInPlace(transform)
	assertVectorInDelta(t, Vector{Y: -1}, AreaNormal(square), epsilon)
	assert.Equal(t, 0.0, AreaXY(square))
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := coords.NewBufferFromPoints([]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}})
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, AreaXY(tri), epsilon)
				assert.InDelta(t, sign*expected, AreaNormal(tri).Z, epsilon)
			}
			if cwI == 1 {
				tri.ReverseInPlace()
			}
			assertArea(1)
			// Stretch the triangle out
			tri.MultiplyMatrix3dInPlace(geometry.Scale3d(1, 2, 1))
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			rotation := geometry.RotationZ(math.Pi / 7)
			for i := 0; i < 14; i++ {
				tri.MultiplyMatrix3dInPlace(rotation)
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again
			tri.TransformInPlace(geometry.Translation(Vector{X: 5, Y: 3}))
			for i := 0; i < 14; i++ {
				tri.MultiplyMatrix3dInPlace(rotation)
				assertArea(2)
			}
		})
	}
}

func TestAreaMatchesGoGeom(t *testing.T) {
	star := simpleStar()
	flat := make([]float64, 0, 2*star.Length()+2)
	for _, p := range star.Points() {
		flat = append(flat, p.X, p.Y)
	}
	flat = append(flat, flat[0], flat[1])
	ring := geom.NewLinearRingFlat(geom.XY, flat)

	adapted := coords.NewFlatCoordsFromRing(ring)
	assert.InDelta(t, ring.Area(), AreaXY(adapted), 1e-9)
	assert.InDelta(t, ring.Area(), Area(adapted), 1e-9)
}
