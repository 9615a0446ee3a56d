package polygon

import (
	"embed"
	"math"
	"testing"

	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/ringio"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds a single counterclockwise <polygon>.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) *coords.Buffer {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rings, err := ringio.ReadSVG(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)
	require.Len(t, rings, 1, "fixture %q must hold exactly one polygon", name)
	return rings[0]
}

var fixtureNames = []string{"square", "lshape", "comb", "pentagon"}

// Some ad hoc code specified fixtures
func simpleStar() *coords.Buffer {
	const outerRadius = 5
	const innerRadius = 2
	star := coords.NewBuffer(10)
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		star.PushXYZ(radius*math.Cos(angle), radius*math.Sin(angle), 0)
	}
	return star
}

// Points on a circle around the origin. With enough of them, every line
// through the origin passes close to some vertex.
func circle(n int, radius float64) *coords.Buffer {
	ring := coords.NewBuffer(n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring.PushXYZ(radius*math.Cos(angle), radius*math.Sin(angle), 0)
	}
	return ring
}

func reversed(b *coords.Buffer) *coords.Buffer {
	r := b.Clone()
	r.ReverseInPlace()
	return r
}

func closed(b *coords.Buffer) *coords.Buffer {
	r := b.Clone()
	r.PushWrap(1)
	return r
}

// rotated starts the ring at vertex k.
func rotated(b *coords.Buffer, k int) *coords.Buffer {
	points := b.Points()
	r := coords.NewBuffer(len(points))
	for i := range points {
		r.Push(points[(i+k)%len(points)])
	}
	return r
}
