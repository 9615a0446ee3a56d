package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyops"
	"github.com/osuushi/polyops/coords"
	"github.com/osuushi/polyops/geometry"
	"github.com/osuushi/polyops/internal/dbg"
	"github.com/osuushi/polyops/polygon"
	"github.com/osuushi/polyops/ringio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Reports the properties of each ring read from a file or stdin. In the
// default text format, input is newline separated points in the form "x y" or
// "x y z", with each ring separated by an extra newline.
//
// Query points given with --query are classified against every ring.
func main() {
	var opts options
	app := newApp(&opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if opts.verbose {
		logger, err := zap.NewDevelopment()
		app.FatalIfError(err, "building logger")
		polyops.SetLogger(logger)
		defer logger.Sync()
	}

	if err := run(&opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	format    string
	tolerance float64
	queries   []string
	png       string
	scale     float64
	imgcat    bool
	color     bool
	verbose   bool
	file      string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("polyinfo", "Report area, centroid, orientation and point classification for polygon rings.")
	app.Flag("format", "Input format.").Short('f').Default("text").Envar("POLYINFO_FORMAT").
		EnumVar(&opts.format, ringio.Formats...)
	app.Flag("tolerance", "Distance within which a query point counts as on the boundary.").
		Default("1e-9").Envar("POLYINFO_TOLERANCE").Float64Var(&opts.tolerance)
	app.Flag("query", `Point to classify, as "x,y" or "x,y,z". May be repeated.`).Short('q').
		StringsVar(&opts.queries)
	app.Flag("png", "Render the rings and query points to this PNG file.").Envar("POLYINFO_PNG").
		StringVar(&opts.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("50").Envar("POLYINFO_SCALE").
		Float64Var(&opts.scale)
	app.Flag("imgcat", "Print the rendered PNG to the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("color", "Colour the classifications.").Default("true").Envar("POLYINFO_COLOR").
		BoolVar(&opts.color)
	app.Flag("verbose", "Log debug events to stderr.").Short('v').Envar("POLYINFO_VERBOSE").
		BoolVar(&opts.verbose)
	app.Arg("file", "File to read rings from. Reads stdin when omitted.").StringVar(&opts.file)
	return app
}

func run(opts *options, stdin io.Reader, out io.Writer) error {
	format, err := ringio.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	queries, err := parseQueries(opts.queries)
	if err != nil {
		return err
	}

	in := stdin
	if opts.file != "" && opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	rings, err := ringio.Read(format, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Read %d rings\n", len(rings))

	r := reporter{out: out, colors: aurora.NewAurora(opts.color), tolerance: opts.tolerance}
	drawn := make([]coords.Collection, len(rings))
	var marks []dbg.Query
	for i, ring := range rings {
		marks = append(marks, r.report(i, ring, queries)...)
		drawn[i] = ring
	}

	if opts.png == "" {
		if opts.imgcat {
			return errors.New("--imgcat needs --png")
		}
		return nil
	}
	if err := dbg.DrawRings(opts.png, drawn, marks, opts.scale); err != nil {
		return err
	}
	if opts.imgcat {
		dbg.CatPNG(opts.png, out)
	}
	return nil
}

func parseQueries(values []string) ([]geometry.Point, error) {
	points := make([]geometry.Point, 0, len(values))
	for _, value := range values {
		p, err := parseQuery(value)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// parseQuery reads "x,y" or "x,y,z".
func parseQuery(value string) (geometry.Point, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return geometry.Point{}, errors.Errorf("query %q: expected x,y or x,y,z", value)
	}
	var coordinates [3]float64
	for i, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Point{}, errors.Wrapf(err, "query %q", value)
		}
		coordinates[i] = c
	}
	return geometry.NewPoint(coordinates[0], coordinates[1], coordinates[2]), nil
}

type reporter struct {
	out       io.Writer
	colors    aurora.Aurora
	tolerance float64
	workspace polygon.Workspace
}

// report writes the properties of one ring and returns its query results for
// drawing.
func (r *reporter) report(index int, ring *coords.Buffer, queries []geometry.Point) []dbg.Query {
	fmt.Fprintf(r.out, "ring %d: %d vertices\n", index, ring.Length())
	fmt.Fprintf(r.out, "  areaXY:    %g\n", polygon.AreaXY(ring))
	normal := r.workspace.AreaNormal(ring)
	fmt.Fprintf(r.out, "  area:      %g\n", normal.Norm())
	fmt.Fprintf(r.out, "  normal:    %s\n", formatVector(normal))
	fmt.Fprintf(r.out, "  turning:   %s\n", describeTurning(polygon.TestTurningDirections(ring)))

	closedRing := ring.Clone()
	closedRing.PushWrap(1)
	fmt.Fprintf(r.out, "  perimeter: %g\n", closedRing.SumOfSegmentLengths())

	if result, ok := r.workspace.CentroidAreaNormal(ring); ok {
		fmt.Fprintf(r.out, "  centroid:  %s\n", result.Centroid)
		var moments geometry.Matrix4d
		r.workspace.AccumulateSecondMomentProducts(ring, result.Centroid, &moments)
		fmt.Fprintf(r.out, "  moments:   xx=%g yy=%g zz=%g xy=%g xz=%g yz=%g\n",
			moments.At(0, 0), moments.At(1, 1), moments.At(2, 2),
			moments.At(0, 1), moments.At(0, 2), moments.At(1, 2))
	} else {
		fmt.Fprintf(r.out, "  centroid:  %s\n", r.colors.Gray(12, "indeterminate"))
	}

	marks := make([]dbg.Query, 0, len(queries))
	for _, q := range queries {
		classification := polygon.ClassifyPointParity(q, ring, r.tolerance)
		fmt.Fprintf(r.out, "  %s: %s\n", q, r.colorize(classification))
		marks = append(marks, dbg.Query{Point: q, Classification: classification})
	}
	return marks
}

func (r *reporter) colorize(c polygon.Classification) aurora.Value {
	switch c {
	case polygon.Interior:
		return r.colors.Green(c)
	case polygon.Exterior:
		return r.colors.Red(c)
	case polygon.Boundary:
		return r.colors.Yellow(c)
	}
	return r.colors.Gray(12, c)
}

func describeTurning(direction int) string {
	switch {
	case direction > 0:
		return "convex, counterclockwise"
	case direction < 0:
		return "convex, clockwise"
	}
	return "not convex"
}

func formatVector(v geometry.Vector) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
