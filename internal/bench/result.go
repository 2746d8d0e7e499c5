package bench

import (
	"fmt"
	"time"
)

// Result is the timing summary for one matrix size.
type Result struct {
	Size    int
	Samples []time.Duration
	Mean    time.Duration
	GFLOPS  float64
}

// summarize reduces the timed samples for an n x n multiply. The operation
// count for dense square multiplication is 2*n^3 (one multiply-add per term).
func summarize(n int, samples []time.Duration) Result {
	var total time.Duration
	for _, s := range samples {
		total += s
	}
	mean := total / time.Duration(len(samples))

	// A mean below clock resolution truncates to zero; report zero throughput
	// rather than dividing by it.
	var gflops float64
	if mean > 0 {
		ops := 2 * float64(n) * float64(n) * float64(n)
		gflops = ops / mean.Seconds() / 1e9
	}

	return Result{Size: n, Samples: samples, Mean: mean, GFLOPS: gflops}
}

// String formats one report line, e.g. "512x512: 41.23 ms (6.51 GFLOPS)".
func (r Result) String() string {
	ms := float64(r.Mean) / float64(time.Millisecond)
	return fmt.Sprintf("%dx%d: %.2f ms (%.2f GFLOPS)", r.Size, r.Size, ms, r.GFLOPS)
}
