package tensor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandShapeAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Rand(32, 32, rng)

	require.Equal(t, 32, m.Rows())
	require.Equal(t, 32, m.Cols())

	data := m.Data()
	require.Len(t, data, 32*32)
	for _, v := range data {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandDeterministicPerSeed(t *testing.T) {
	a := Rand(8, 8, rand.New(rand.NewSource(3)))
	b := Rand(8, 8, rand.New(rand.NewSource(3)))
	c := Rand(8, 8, rand.New(rand.NewSource(4)))

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestMatMulKnownProduct(t *testing.T) {
	a, err := FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := FromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})
	require.NoError(t, err)

	c, err := a.MatMul(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

func TestMatMulShapeMismatch(t *testing.T) {
	a := Rand(4, 4, rand.New(rand.NewSource(1)))
	b := Rand(5, 5, rand.New(rand.NewSource(1)))

	_, err := a.MatMul(b)
	require.Error(t, err)
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice(2, 2, []float64{1, 2, 3})
	require.Error(t, err)
}

func benchmarkMatMul(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	x := Rand(n, n, rng)
	y := Rand(n, n, rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.MatMul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatMul128(b *testing.B) {
	benchmarkMatMul(b, 128)
}

func BenchmarkMatMul256(b *testing.B) {
	benchmarkMatMul(b, 256)
}

func BenchmarkMatMul512(b *testing.B) {
	benchmarkMatMul(b, 512)
}

func BenchmarkMatMul1024(b *testing.B) {
	benchmarkMatMul(b, 1024)
}
