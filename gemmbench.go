package gemmbench

import (
	"github.com/unixsysdev/gemmbench/internal/bench"
	"github.com/unixsysdev/gemmbench/internal/config"
)

// Result is the per-size timing summary produced by a run.
type Result = bench.Result

// Option overrides part of the benchmark configuration.
type Option = config.Option

// Re-export the option constructors so callers never import internal packages.
var (
	WithSizes      = config.WithSizes
	WithWarmupRuns = config.WithWarmupRuns
	WithTimedRuns  = config.WithTimedRuns
	WithSeed       = config.WithSeed
	WithVerify     = config.WithVerify
)

// CapThreads pins the process to a single execution thread. Call it before
// Run when measuring single-core throughput.
func CapThreads() {
	bench.CapThreads()
}

// Run executes the benchmark with the given overrides and returns one Result
// per configured size, in configured order.
func Run(opts ...Option) ([]Result, error) {
	cfg, err := config.Default(opts...)
	if err != nil {
		return nil, err
	}
	return bench.New(cfg).Run()
}
