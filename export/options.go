package export

import "gonum.org/v1/plot/vg"

type config struct {
	title  string
	xLabel string
	yLabel string
	width  vg.Length
	height vg.Length
}

func defaultConfig() config {
	return config{
		title:  "Smoothed Curve",
		xLabel: "X",
		yLabel: "Y",
		width:  16 * vg.Centimeter,
		height: 10 * vg.Centimeter,
	}
}

// Option configures the rendered figure.
type Option func(*config)

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithAxisLabels sets the x and y axis labels.
func WithAxisLabels(x, y string) Option {
	return func(cfg *config) {
		cfg.xLabel = x
		cfg.yLabel = y
	}
}

// WithSize sets the canvas size in centimeters. Non-positive values are
// ignored.
func WithSize(widthCm, heightCm float64) Option {
	return func(cfg *config) {
		if widthCm > 0 {
			cfg.width = vg.Length(widthCm) * vg.Centimeter
		}

		if heightCm > 0 {
			cfg.height = vg.Length(heightCm) * vg.Centimeter
		}
	}
}
