package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/polyops/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSquares = `# unit square
0 0
1 0
1 1
0 1

# clockwise, twice the size
0 0
0 2
2 2
2 0
`

func parseArgs(t *testing.T, args ...string) *options {
	var opts options
	_, err := newApp(&opts).Parse(args)
	require.NoError(t, err)
	return &opts
}

func TestParseQuery(t *testing.T) {
	p, err := parseQuery("1.5, -2")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 1.5, Y: -2}, p)

	p, err = parseQuery("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 1, Y: 2, Z: 3}, p)

	for _, bad := range []string{"", "1", "1,2,3,4", "x,2"} {
		_, err := parseQuery(bad)
		assert.Error(t, err, bad)
	}
}

func TestFlagDefaults(t *testing.T) {
	opts := parseArgs(t)
	assert.Equal(t, "text", opts.format)
	assert.Equal(t, 1e-9, opts.tolerance)
	assert.True(t, opts.color)
	assert.Empty(t, opts.file)

	var bad options
	_, err := newApp(&bad).Parse([]string{"--format", "dxf"})
	assert.Error(t, err)
}

func TestFlagsFromEnvironment(t *testing.T) {
	t.Setenv("POLYINFO_FORMAT", "svg")
	t.Setenv("POLYINFO_TOLERANCE", "0.5")
	opts := parseArgs(t)
	assert.Equal(t, "svg", opts.format)
	assert.Equal(t, 0.5, opts.tolerance)
}

func TestRunReportsEachRing(t *testing.T) {
	opts := parseArgs(t, "--no-color", "-q", "0.5,0.5", "-q", "1,0.5", "-q", "3,3")
	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(twoSquares), &out))
	report := out.String()

	assert.Contains(t, report, "Read 2 rings")
	assert.Contains(t, report, "ring 0: 4 vertices")
	assert.Contains(t, report, "areaXY:    1\n")
	assert.Contains(t, report, "areaXY:    -4\n")
	assert.Contains(t, report, "convex, counterclockwise")
	assert.Contains(t, report, "convex, clockwise")
	assert.Contains(t, report, "perimeter: 8\n")
	assert.Contains(t, report, "centroid:  (0.5, 0.5, 0)")
	assert.Contains(t, report, "centroid:  (1, 1, 0)")
	assert.Contains(t, report, "(0.5, 0.5, 0): interior")
	assert.Contains(t, report, "(1, 0.5, 0): boundary")
	assert.Contains(t, report, "(1, 0.5, 0): interior")
	assert.Contains(t, report, "(3, 3, 0): exterior")
}

func TestRunDegenerateRing(t *testing.T) {
	opts := parseArgs(t, "--no-color")
	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader("0 0\n1 1\n2 2\n"), &out))
	assert.Contains(t, out.String(), "centroid:  indeterminate")
	assert.Contains(t, out.String(), "not convex")
}

func TestRunReadsFileAndDrawsPNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rings.svg")
	require.NoError(t, os.WriteFile(input, []byte(
		`<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 2,0 2,1 1,1 1,2 0,2" /></svg>`,
	), 0o644))
	output := filepath.Join(dir, "rings.png")

	opts := parseArgs(t, "--format=svg", "--no-color", "--png", output, input)
	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "areaXY:    3\n")
	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(parseArgs(t, "-q", "nope"), strings.NewReader(twoSquares), &out))
	assert.Error(t, run(parseArgs(t, "--imgcat"), strings.NewReader(twoSquares), &out))
	assert.Error(t, run(parseArgs(t), strings.NewReader("0 0\n1\n"), &out))
	assert.Error(t, run(parseArgs(t, filepath.Join(t.TempDir(), "missing.txt")), strings.NewReader(""), &out))
}
