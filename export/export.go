package export

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/smooth"
)

// ErrUnsupportedFormat indicates a file extension outside the supported
// set (png, jpg/jpeg, svg, pdf).
var ErrUnsupportedFormat = errors.New("export: unsupported image format")

// formatByExt maps lower-case file extensions to vg canvas formats.
var formatByExt = map[string]string{
	".png":  "png",
	".jpg":  "jpg",
	".jpeg": "jpg",
	".svg":  "svg",
	".pdf":  "pdf",
}

var (
	lineColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	scatterColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Figure builds the plot for a raw series and its smoothed curve without
// writing it anywhere.
func Figure(s curve.Series, c smooth.Curve, opts ...Option) (*plot.Plot, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xyPoints(c.X, c.Y))
	if err != nil {
		return nil, fmt.Errorf("export: line: %w", err)
	}

	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor

	scatter, err := plotter.NewScatter(xyPoints(s.X, s.Y))
	if err != nil {
		return nil, fmt.Errorf("export: scatter: %w", err)
	}

	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = scatterColor

	p.Add(line, scatter)
	p.Legend.Add(fmt.Sprintf("%s fit", c.Method), line)
	p.Legend.Add("data", scatter)
	p.Legend.Top = true

	return p, nil
}

// Save renders the figure and writes it to path. The format follows the
// file extension. The output file is created, flushed, and closed before
// Save returns, on failure paths included.
func Save(s curve.Series, c smooth.Curve, path string, opts ...Option) error {
	format, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := Figure(s, c, opts...)
	if err != nil {
		return err
	}

	w, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return fmt.Errorf("export: render: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}

	return nil
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	return pts
}
