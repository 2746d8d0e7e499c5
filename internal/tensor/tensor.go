package tensor

import (
	"math/rand"

	"github.com/pkg/errors"
	ggtensor "gorgonia.org/tensor"
)

// Matrix is a dense, row-major float64 matrix backed by gorgonia.
type Matrix struct {
	data *ggtensor.Dense
}

// Rand returns a rows x cols matrix with entries drawn uniformly from [0, 1).
func Rand(rows, cols int, rng *rand.Rand) *Matrix {
	backing := make([]float64, rows*cols)
	for i := range backing {
		backing[i] = rng.Float64()
	}
	return &Matrix{
		data: ggtensor.New(ggtensor.WithShape(rows, cols), ggtensor.WithBacking(backing)),
	}
}

// FromSlice wraps an existing row-major backing slice as a rows x cols matrix.
func FromSlice(rows, cols int, backing []float64) (*Matrix, error) {
	if len(backing) != rows*cols {
		return nil, errors.Errorf("tensor: backing has %d elements, want %d", len(backing), rows*cols)
	}
	return &Matrix{
		data: ggtensor.New(ggtensor.WithShape(rows, cols), ggtensor.WithBacking(backing)),
	}, nil
}

// MatMul returns m*other computed by the library's optimized kernel.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	result, err := ggtensor.MatMul(m.data, other.data)
	if err != nil {
		return nil, errors.Wrap(err, "matmul")
	}
	d, ok := result.(*ggtensor.Dense)
	if !ok {
		return nil, errors.Errorf("matmul: unexpected result type %T", result)
	}
	return &Matrix{data: d}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.data.Shape()[0]
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.data.Shape()[1]
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float64 {
	return m.data.Data().([]float64)
}
