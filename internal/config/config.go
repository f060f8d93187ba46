// Package config holds the process-wide run configuration of the
// curveplot command. It is loaded once at startup and never mutated
// afterwards.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-curve/interp"
	"github.com/cwbudde/algo-curve/smooth"
)

// envPrefix is the prefix of environment variables that override file
// values: CURVEPLOT_METHOD, CURVEPLOT_SAMPLES, CURVEPLOT_LOWPASS.
const envPrefix = "CURVEPLOT_"

// Config is the run configuration of the curveplot command.
type Config struct {
	// Method is the interpolation method name passed to the smoother.
	Method string `yaml:"method"`
	// Samples is the number of points on the smoothed curve.
	Samples int `yaml:"samples"`
	// Lowpass is the normalized cutoff of the optional spectral
	// smoothing pass; 0 disables it.
	Lowpass float64 `yaml:"lowpass"`
	// Figure configures the exported image.
	Figure Figure `yaml:"figure"`
}

// Figure configures the exported image.
type Figure struct {
	Title    string  `yaml:"title"`
	XLabel   string  `yaml:"x_label"`
	YLabel   string  `yaml:"y_label"`
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:  interp.MethodCubic.String(),
		Samples: smooth.DefaultNumPoints,
		Figure: Figure{
			Title:    "Smoothed Curve",
			XLabel:   "X",
			YLabel:   "Y",
			WidthCm:  16,
			HeightCm: 10,
		},
	}
}

// Load builds the configuration from the defaults, an optional YAML file
// (skipped when path is empty), and environment overrides, in that
// order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "METHOD"); ok {
		c.Method = v
	}

	if v, ok := os.LookupEnv(envPrefix + "SAMPLES"); ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("config: %sSAMPLES: %w", envPrefix, err)
		}

		c.Samples = n
	}

	if v, ok := os.LookupEnv(envPrefix + "LOWPASS"); ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return fmt.Errorf("config: %sLOWPASS: %w", envPrefix, err)
		}

		c.Lowpass = f
	}

	return nil
}

// Validate checks the configuration for values the pipeline would reject
// later anyway, so mistakes surface at startup.
func (c Config) Validate() error {
	if _, err := interp.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Samples < 1 {
		return fmt.Errorf("config: samples must be >= 1, have %d", c.Samples)
	}

	if c.Lowpass < 0 || c.Lowpass > 1 {
		return fmt.Errorf("config: lowpass must be in [0, 1], have %v", c.Lowpass)
	}

	return nil
}
