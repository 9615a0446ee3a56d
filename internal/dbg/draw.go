package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
	"github.com/osuushi/polyops/polygon"
	"github.com/pkg/errors"
)

// Padding around the rings, in pixels
const drawPadding = 40

// Query is a point drawn on top of the rings, coloured by its classification.
type Query struct {
	Point          geometry.Point
	Classification polygon.Classification
}

// DrawRings renders the xy projection of the rings as a PNG at path. Rings are
// filled with the even-odd rule and labelled with their Name at the centroid.
// scale is pixels per unit.
func DrawRings(path string, rings []coords.Collection, queries []Query, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}
	bounds := geometry.NullRange()
	for _, ring := range rings {
		for i := 0; i < ring.Length(); i++ {
			p, _ := ring.PointAt(i)
			bounds.ExtendPoint(p)
		}
	}
	for _, q := range queries {
		bounds.ExtendPoint(q.Point)
	}
	if bounds.IsNull() {
		return errors.New("nothing to draw")
	}
	minX, minY := bounds.Low.X, bounds.Low.Y
	maxX, maxY := bounds.High.X, bounds.High.Y

	// Set up the context
	width := int(math.Ceil(scale*(maxX-minX))) + drawPadding*2
	height := int(math.Ceil(scale*(maxY-minY))) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, ring := range rings {
		n := ring.Length()
		if n == 0 {
			continue
		}
		p, _ := ring.PointAt(0)
		c.MoveTo(p.X, p.Y)
		for i := 1; i < n; i++ {
			p, _ = ring.PointAt(i)
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, q := range queries {
		switch q.Classification {
		case polygon.Interior:
			c.SetRGB(0.3, 1, 0.3)
		case polygon.Exterior:
			c.SetRGB(1, 0.3, 0.3)
		case polygon.Boundary:
			c.SetRGB(1, 1, 0)
		default:
			c.SetRGB(0.6, 0.6, 0.6)
		}
		c.DrawCircle(q.Point.X, q.Point.Y, 4/scale)
		c.Fill()
	}

	// Labels are drawn in pixel space so the text isn't flipped
	c.SetRGB(1, 1, 1)
	for _, ring := range rings {
		result, ok := polygon.CentroidAreaNormal(ring)
		if !ok {
			continue
		}
		x, y := c.TransformPoint(result.Centroid.X, result.Centroid.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(Name(ring), x, y, 0.5, 0.5)
		c.Pop()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// CatPNG prints the image at path inline (iTerm only).
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
