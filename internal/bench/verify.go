package bench

import (
	"math"

	"github.com/pkg/errors"

	"github.com/unixsysdev/gemmbench/internal/mathx"
	"github.com/unixsysdev/gemmbench/internal/tensor"
)

// verifyTolerance is the maximum absolute deviation allowed between the
// library product and the blas64 reference.
const verifyTolerance = 1e-8

// verify recomputes a*b with the gonum blas64 kernel and compares element-wise.
func verify(a, b, got *tensor.Matrix) error {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	want := make([]float64, m*n)
	mathx.GemmNN(1, a.Data(), m, k, b.Data(), k, n, 0, want)

	out := got.Data()
	if len(out) != len(want) {
		return errors.Errorf("verify: result has %d elements, want %d", len(out), len(want))
	}
	for i := range want {
		if d := math.Abs(out[i] - want[i]); d > verifyTolerance {
			return errors.Errorf("verify: element %d off by %g (got %g, want %g)", i, d, out[i], want[i])
		}
	}
	return nil
}
