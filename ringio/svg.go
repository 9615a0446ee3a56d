package ringio

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyops/coords"
	"github.com/pkg/errors"
)

// ReadSVG turns every <polygon> element into a ring. This is not a full SVG
// reader: transforms, paths and the y-down convention are ignored, so the
// coordinates come out exactly as written in the points attribute.
func ReadSVG(r io.Reader) ([]*coords.Buffer, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var rings []*coords.Buffer
	for i, polygonEl := range rootEl.FindAll("polygon") {
		ring, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in x, y pairs.
func parseSVGPoints(attribute string) (*coords.Buffer, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	ring := coords.NewBuffer(len(fields) / 2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		ring.PushXYZ(x, y, 0)
	}
	return ring, nil
}
