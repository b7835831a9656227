package matrix_test

import (
	"testing"

	"github.com/katalvlaran/laplace/matrix"
	"github.com/stretchr/testify/require"
)

// TestGonumInterop checks that ToMat preserves values and does not alias.
func TestGonumInterop(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	g, err := matrix.ToMat(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, g.At(1, 0))

	g.Set(0, 0, -1) // must not leak back into m
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = matrix.ToMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRange reports min and max.
func TestRange(t *testing.T) {
	m, _ := matrix.NewDenseFrom(2, 2, []float64{3, -5, 0, 4})
	lo, hi, err := matrix.Range(m)
	require.NoError(t, err)
	require.Equal(t, -5.0, lo)
	require.Equal(t, 4.0, hi)

	_, _, err = matrix.Range(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
