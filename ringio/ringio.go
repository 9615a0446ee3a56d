// Package ringio reads rings from the text, SVG and GeoJSON formats accepted
// by the polyinfo command.
package ringio

import (
	"io"
	"strings"

	"github.com/osuushi/polyops/coords"
	"github.com/pkg/errors"
)

type Format string

const (
	Text    Format = "text"
	SVG     Format = "svg"
	GeoJSON Format = "geojson"
)

// Formats lists every supported format name.
var Formats = []string{string(Text), string(SVG), string(GeoJSON)}

// ParseFormat maps a format name (case insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case Text, SVG, GeoJSON:
		return f, nil
	}
	return "", errors.Errorf("unknown ring format %q", name)
}

// Read reads every ring in r using the given format.
func Read(format Format, r io.Reader) ([]*coords.Buffer, error) {
	switch format {
	case Text:
		return ReadText(r)
	case SVG:
		return ReadSVG(r)
	case GeoJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading geojson")
		}
		return ReadGeoJSON(data)
	}
	return nil, errors.Errorf("unknown ring format %q", format)
}
