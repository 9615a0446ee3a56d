package ringio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polyops/coords"
	"github.com/pkg/errors"
)

// ReadText reads newline separated points in the form "x y" or "x y z", with
// each ring separated by an extra newline. Lines starting with '#' are
// ignored.
func ReadText(r io.Reader) ([]*coords.Buffer, error) {
	var rings []*coords.Buffer
	ring := coords.NewBuffer(0)
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if ring.Length() > 0 {
				rings = append(rings, ring)
				ring = coords.NewBuffer(0)
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring.Push(point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rings")
	}

	// Handle trailing ring if any
	if ring.Length() > 0 {
		rings = append(rings, ring)
	}
	return rings, nil
}

func parsePoint(line string) (coords.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		return coords.Point{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(parts))
	}
	var values [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return coords.Point{}, errors.Wrapf(err, "invalid coordinate %q", part)
		}
		values[i] = value
	}
	return coords.Point{X: values[0], Y: values[1], Z: values[2]}, nil
}
