// Command curveplot parses (x, y) data, smooths it with an interpolation
// method, prints descriptive statistics, and renders the curve to an
// image file.
//
// Usage:
//
//	curveplot [flags]
//
// Input is read from -in or, when omitted, from stdin: one point per
// line, fields separated by space/comma/tab/semicolon, '#' starts a
// comment line.
//
// Examples:
//
//	curveplot -in data.txt -o curve.png
//	curveplot -method akima -samples 2000 -o curve.svg < data.txt
//	curveplot -in data.txt -stats
//	CURVEPLOT_METHOD=linear curveplot -in data.txt -o curve.pdf
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/cwbudde/algo-curve/export"
	"github.com/cwbudde/algo-curve/internal/config"
	"github.com/cwbudde/algo-curve/interp"
	"github.com/cwbudde/algo-curve/parse"
	"github.com/cwbudde/algo-curve/smooth"
	"github.com/cwbudde/algo-curve/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "curveplot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	methodNames := lo.Map(interp.Methods(), func(m interp.Method, _ int) string {
		return m.String()
	})

	cfgPath := flag.String("config", "", "path to a YAML config file")
	in := flag.String("in", "", "input data file (default stdin)")
	out := flag.String("o", "", "output image file (.png, .jpg, .svg, .pdf)")
	method := flag.String("method", "", "interpolation method: "+strings.Join(methodNames, ", "))
	samples := flag.Int("samples", 0, "number of samples on the smoothed curve")
	lowpass := flag.Float64("lowpass", -1, "spectral smoothing cutoff in (0, 1]; 0 disables")
	title := flag.String("title", "", "figure title")
	statsOnly := flag.Bool("stats", false, "print statistics only, skip the image")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: curveplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reads (x, y) points, smooths them, prints statistics,\n")
		fmt.Fprintf(os.Stderr, "and writes the figure given with -o.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	// Explicit flags win over config file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "method":
			cfg.Method = *method
		case "samples":
			cfg.Samples = *samples
		case "lowpass":
			cfg.Lowpass = *lowpass
		case "title":
			cfg.Figure.Title = *title
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput(*in)
	if err != nil {
		return err
	}

	series, err := parse.Series(text)
	if err != nil {
		return err
	}

	curveOut, err := smooth.Series(series, cfg.Method, smooth.WithNumPoints(cfg.Samples))
	if err != nil {
		return err
	}

	if curveOut.FellBack {
		fmt.Fprintf(os.Stderr, "warning: %s interpolation not applicable (%v); fell back to linear\n",
			cfg.Method, curveOut.FallbackCause)
	}

	if cfg.Lowpass > 0 {
		curveOut, err = smooth.Lowpass(curveOut, cfg.Lowpass)
		if err != nil {
			return err
		}
	}

	summary, err := stats.Calculate(series.Y)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, summary, curveOut)

	if *statsOnly {
		return nil
	}

	if *out == "" {
		return fmt.Errorf("no output file given (use -o or -stats)")
	}

	return export.Save(series, curveOut, *out,
		export.WithTitle(cfg.Figure.Title),
		export.WithAxisLabels(cfg.Figure.XLabel, cfg.Figure.YLabel),
		export.WithSize(cfg.Figure.WidthCm, cfg.Figure.HeightCm),
	)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func printSummary(w io.Writer, s stats.Summary, c smooth.Curve) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "points\t%s\n", humanize.Comma(int64(s.Count)))
	fmt.Fprintf(tw, "y min\t%g\n", s.Min)
	fmt.Fprintf(tw, "y max\t%g\n", s.Max)
	fmt.Fprintf(tw, "y mean\t%g\n", s.Mean)
	fmt.Fprintf(tw, "method\t%s\n", c.Method)
	fmt.Fprintf(tw, "samples\t%s\n", humanize.Comma(int64(c.Len())))
	tw.Flush()
}
