package smooth

type config struct {
	numPoints  int
	noFallback bool
}

func defaultConfig() config {
	return config{numPoints: DefaultNumPoints}
}

// Option configures [Series].
type Option func(*config)

// WithNumPoints overrides the sample count of the result. Values below 1
// are ignored.
func WithNumPoints(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.numPoints = n
		}
	}
}

// WithoutFallback disables the automatic substitution of linear
// interpolation when the requested kernel cannot be built; the
// construction error is returned instead.
func WithoutFallback() Option {
	return func(cfg *config) {
		cfg.noFallback = true
	}
}
