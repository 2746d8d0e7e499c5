package config

import (
	"github.com/pkg/errors"
)

// Config holds the benchmark parameters.
type Config struct {
	// Sizes are the square matrix side lengths to benchmark, in order.
	Sizes []int
	// WarmupRuns is the number of untimed multiplications before sampling.
	WarmupRuns int
	// TimedRuns is the number of timed multiplications per size.
	TimedRuns int
	// Seed seeds the input generator. Zero means time-based.
	Seed int64
	// Verify checks the warmup product against an independent BLAS reference.
	Verify bool
}

// Default builds the stock configuration and applies any overrides.
func Default(opts ...Option) (*Config, error) {
	cfg := &Config{
		Sizes:      []int{256, 512, 1024},
		WarmupRuns: 1,
		TimedRuns:  5,
		Seed:       0,
		Verify:     false,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("config: no matrix sizes")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Errorf("config: invalid matrix size %d", n)
		}
	}
	if c.WarmupRuns < 0 {
		return errors.Errorf("config: warmup runs must be non-negative, got %d", c.WarmupRuns)
	}
	if c.TimedRuns <= 0 {
		return errors.Errorf("config: timed runs must be positive, got %d", c.TimedRuns)
	}
	return nil
}

// Option is a function that modifies the config
type Option func(*Config)

// WithSizes sets the matrix sizes to benchmark
func WithSizes(sizes ...int) Option {
	return func(c *Config) { c.Sizes = sizes }
}

// WithWarmupRuns sets the number of untimed warmup multiplications
func WithWarmupRuns(v int) Option {
	return func(c *Config) { c.WarmupRuns = v }
}

// WithTimedRuns sets the number of timed multiplications per size
func WithTimedRuns(v int) Option {
	return func(c *Config) { c.TimedRuns = v }
}

// WithSeed sets the input generator seed
func WithSeed(v int64) Option {
	return func(c *Config) { c.Seed = v }
}

// WithVerify enables checking results against a BLAS reference
func WithVerify(v bool) Option {
	return func(c *Config) { c.Verify = v }
}
