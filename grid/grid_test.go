package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/laplace/grid"
	"github.com/katalvlaran/laplace/matrix"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate shapes and steps.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		dx         float64
		err        error
	}{
		{"OneRow", 1, 5, 1, grid.ErrTooFewPoints},
		{"ZeroCols", 5, 0, 1, grid.ErrTooFewPoints},
		{"ZeroStep", 3, 3, 0, grid.ErrBadStep},
		{"NegativeStep", 3, 3, -0.5, grid.ErrBadStep},
		{"NaNStep", 3, 3, math.NaN(), grid.ErrBadStep},
		{"InfStep", 3, 3, math.Inf(1), grid.ErrBadStep},
		{"WidthOverflow", 2, 3, 1e308, grid.ErrBadStep},
		{"HeightOverflow", 3, 2, 1e308, grid.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.dx)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Coordinates checks extents, axes and mesh orientation on a 3×4 grid.
func TestNew_Coordinates(t *testing.T) {
	g, err := grid.New(3, 4, 0.5)
	require.NoError(t, err)

	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 0.5, g.Step())
	require.InDelta(t, 1.5, g.Width(), 1e-12)
	require.InDelta(t, 1.0, g.Height(), 1e-12)
	require.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5}, g.Xs(), 1e-12)
	require.InDeltaSlice(t, []float64{0, 0.5, 1}, g.Ys(), 1e-12)

	x, y := g.Mesh()
	require.Equal(t, 3, x.Rows())
	require.Equal(t, 4, x.Cols())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			xv, err := x.At(i, j)
			require.NoError(t, err)
			yv, err := y.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, float64(j)*0.5, xv, 1e-12)
			require.InDelta(t, float64(i)*0.5, yv, 1e-12)
		}
	}
}

// TestGrid_Immutable ensures callers cannot mutate the grid through accessors.
func TestGrid_Immutable(t *testing.T) {
	g, err := grid.New(2, 2, 1)
	require.NoError(t, err)

	xs := g.Xs()
	xs[1] = 42
	require.Equal(t, 1.0, g.Xs()[1])

	x := g.X()
	require.NoError(t, x.Set(0, 1, 42))
	v, _ := g.X().At(0, 1)
	require.Equal(t, 1.0, v)
}

// TestNew_LargeStep keeps meshes complete when the extent is near the float limit.
func TestNew_LargeStep(t *testing.T) {
	g, err := grid.New(2, 2, 1e308)
	require.NoError(t, err)
	x, y := g.Mesh()
	require.NoError(t, matrix.ValidateFinite(x))
	require.NoError(t, matrix.ValidateFinite(y))
	v, _ := x.At(1, 1)
	require.Equal(t, 1e308, v)
}

// TestIsBoundary checks the edge predicate.
func TestIsBoundary(t *testing.T) {
	require.True(t, grid.IsBoundary(3, 4, 0, 2))
	require.True(t, grid.IsBoundary(3, 4, 1, 3))
	require.False(t, grid.IsBoundary(3, 4, 1, 1))
	require.False(t, grid.IsBoundary(3, 4, 1, 2))
}

//----------------------------------------------------------------------------//
// InitialField Tests
//----------------------------------------------------------------------------//

// TestInitialField_Dipole verifies edge values, corners and zero interior.
func TestInitialField_Dipole(t *testing.T) {
	v, err := grid.InitialField(4, 5, grid.Dipole(2))
	require.NoError(t, err)

	want := "[0, 2, 2, 2, 0]\n" +
		"[0, 0, 0, 0, 0]\n" +
		"[0, 0, 0, 0, 0]\n" +
		"[0, -2, -2, -2, 0]\n"
	require.Equal(t, want, v.String())
}

// TestInitialField_CornersTakeSides checks the write order on asymmetric edges.
func TestInitialField_CornersTakeSides(t *testing.T) {
	v, err := grid.InitialField(3, 3, grid.Boundary{Top: 1, Bottom: 2, Left: 3, Right: 4})
	require.NoError(t, err)
	require.Equal(t, "[3, 1, 4]\n[3, 0, 4]\n[3, 2, 4]\n", v.String())
}

// TestInitialField_Errors covers shape and numeric rejections.
func TestInitialField_Errors(t *testing.T) {
	_, err := grid.InitialField(1, 3, grid.Dipole(1))
	require.ErrorIs(t, err, grid.ErrTooFewPoints)

	_, err = grid.InitialField(3, 3, grid.Dipole(math.NaN()))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFieldFor sizes the field to the grid.
func TestFieldFor(t *testing.T) {
	g, err := grid.New(6, 7, 0.2)
	require.NoError(t, err)
	v, err := g.FieldFor(grid.Dipole(5))
	require.NoError(t, err)
	require.Equal(t, 6, v.Rows())
	require.Equal(t, 7, v.Cols())
}

// TestConn4 checks the neighbour offsets are the four orthogonal unit steps.
func TestConn4(t *testing.T) {
	seen := map[[2]int]bool{}
	for _, d := range grid.Conn4 {
		require.Equal(t, 1, abs(d[0])+abs(d[1]))
		seen[d] = true
	}
	require.Len(t, seen, 4)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
