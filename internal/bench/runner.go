package bench

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/unixsysdev/gemmbench/internal/config"
	"github.com/unixsysdev/gemmbench/internal/tensor"
)

// Runner drives the warmup and timed multiply loop for every configured size.
type Runner struct {
	cfg *config.Config
	rng *rand.Rand

	// matmul is the primitive under test. Swapped out in tests to count calls.
	matmul func(a, b *tensor.Matrix) (*tensor.Matrix, error)
}

// New creates a Runner for the given configuration.
func New(cfg *config.Config) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		matmul: (*tensor.Matrix).MatMul,
	}
}

// Run benchmarks every configured size in order and returns one Result per
// size. Any failure aborts the whole run; there are no retries or fallbacks.
func (r *Runner) Run() ([]Result, error) {
	results := make([]Result, 0, len(r.cfg.Sizes))
	for _, n := range r.cfg.Sizes {
		res, err := r.runSize(n)
		if err != nil {
			return nil, errors.Wrapf(err, "size %d", n)
		}
		results = append(results, res)
	}
	return results, nil
}

// runSize generates fresh inputs, absorbs one-time costs with untimed warmup
// runs, then times the configured number of multiplications.
func (r *Runner) runSize(n int) (Result, error) {
	a := tensor.Rand(n, n, r.rng)
	b := tensor.Rand(n, n, r.rng)

	// The first product gets verified even when warmup is disabled.
	verified := !r.cfg.Verify

	for i := 0; i < r.cfg.WarmupRuns; i++ {
		c, err := r.matmul(a, b)
		if err != nil {
			return Result{}, errors.Wrap(err, "warmup")
		}
		if !verified {
			if err := verify(a, b, c); err != nil {
				return Result{}, err
			}
			verified = true
		}
	}

	samples := make([]time.Duration, r.cfg.TimedRuns)
	for i := range samples {
		start := time.Now()
		c, err := r.matmul(a, b)
		samples[i] = time.Since(start)
		if err != nil {
			return Result{}, errors.Wrapf(err, "timed run %d", i)
		}
		if !verified {
			if err := verify(a, b, c); err != nil {
				return Result{}, err
			}
			verified = true
		}
	}

	return summarize(n, samples), nil
}
