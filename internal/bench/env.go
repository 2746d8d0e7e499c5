package bench

import (
	"os"
	"runtime"
)

// threadEnvVars are the pool-size knobs the common native BLAS backends read.
// Which one is authoritative depends on how the BLAS was built, so all are set.
var threadEnvVars = []string{
	"OMP_NUM_THREADS",
	"OPENBLAS_NUM_THREADS",
	"MKL_NUM_THREADS",
	"VECLIB_MAXIMUM_THREADS",
}

// CapThreads pins the process to a single execution thread. It must run before
// the first multiply: native backends read these variables once at startup, and
// GOMAXPROCS governs the pure-Go engine's parallelism.
func CapThreads() {
	for _, k := range threadEnvVars {
		os.Setenv(k, "1")
	}
	runtime.GOMAXPROCS(1)
}
