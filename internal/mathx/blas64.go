package mathx

import (
	"gonum.org/v1/gonum/blas"
	b64 "gonum.org/v1/gonum/blas/blas64"
)

// GemmNN computes C = alpha*A*B + beta*C for row-major float64 matrices.
// A is (ar x ac), B is (br x bc) where ac==br. C is (ar x bc).
func GemmNN(alpha float64, A []float64, ar, ac int, B []float64, br, bc int, beta float64, C []float64) {
	// Wrap as blas64.General with row-major stride=cols
	a := b64.General{Rows: ar, Cols: ac, Data: A, Stride: ac}
	b := b64.General{Rows: br, Cols: bc, Data: B, Stride: bc}
	c := b64.General{Rows: ar, Cols: bc, Data: C, Stride: bc}
	b64.Gemm(blas.NoTrans, blas.NoTrans, alpha, a, b, beta, c)
}
