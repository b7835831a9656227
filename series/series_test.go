package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/laplace/grid"
	"github.com/katalvlaran/laplace/matrix"
	"github.com/katalvlaran/laplace/series"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows, cols int, dx float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, dx)
	require.NoError(t, err)
	return g
}

func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// TestSolve_Errors covers mesh, domain, term and option validation.
func TestSolve_Errors(t *testing.T) {
	g := mustGrid(t, 4, 5, 0.5)
	x, y := g.Mesh()
	p := series.Params{A: g.Width(), B: g.Height(), V0: 1, Terms: 9}
	short, _ := matrix.NewDense(4, 4)

	cases := []struct {
		name string
		x, y *matrix.Dense
		p    series.Params
		opts []series.Option
		err  error
	}{
		{"NilX", nil, y, p, nil, matrix.ErrNilMatrix},
		{"NilY", x, nil, p, nil, matrix.ErrNilMatrix},
		{"ShapeMismatch", x, short, p, nil, matrix.ErrDimensionMismatch},
		{"ZeroA", x, y, series.Params{A: 0, B: 1, V0: 1, Terms: 1}, nil, series.ErrBadDomain},
		{"NegativeB", x, y, series.Params{A: 1, B: -1, V0: 1, Terms: 1}, nil, series.ErrBadDomain},
		{"InfA", x, y, series.Params{A: math.Inf(1), B: 1, V0: 1, Terms: 1}, nil, series.ErrBadDomain},
		{"NaNV0", x, y, series.Params{A: 1, B: 1, V0: math.NaN(), Terms: 1}, nil, series.ErrBadDomain},
		{"NegativeTerms", x, y, series.Params{A: 1, B: 1, V0: 1, Terms: -1}, nil, series.ErrBadTerms},
		{"BadEvaluation", x, y, p, []series.Option{series.WithEvaluation(series.Evaluation(9))}, series.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.Solve(tc.x, tc.y, tc.p, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := series.SolveGrid(nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolve_ZeroPotential verifies V0 = 0 yields an all-zero field.
func TestSolve_ZeroPotential(t *testing.T) {
	for _, terms := range []int{0, 1, 50, 400} {
		v, err := series.SolveGrid(mustGrid(t, 7, 11, 0.3), 0, terms)
		require.NoError(t, err)
		lo, hi, err := matrix.Range(v)
		require.NoError(t, err)
		require.Zero(t, lo)
		require.Zero(t, hi)
	}

	v, err := series.SolveGrid(mustGrid(t, 5, 5, 1), 3, 0)
	require.NoError(t, err)
	lo, hi, _ := matrix.Range(v)
	require.Zero(t, lo)
	require.Zero(t, hi)
}

// TestSolve_Plates checks the bottom row tends to −V0 and the top to +V0,
// with the grounded corners at zero.
func TestSolve_Plates(t *testing.T) {
	const v0 = 1.0
	g := mustGrid(t, 21, 21, 0.1)
	v, err := series.SolveGrid(g, v0, 101)
	require.NoError(t, err)

	last := g.Rows() - 1
	require.InDelta(t, -v0, at(t, v, 0, 10), 0.02)
	require.InDelta(t, v0, at(t, v, last, 10), 0.02)
	for _, i := range []int{0, last} {
		require.InDelta(t, 0, at(t, v, i, 0), 1e-9)
		require.InDelta(t, 0, at(t, v, i, g.Cols()-1), 1e-9)
	}
}

// TestSolve_Symmetry checks V(x,y) = −V(x,b−y) and V(x,y) = V(a−x,y).
func TestSolve_Symmetry(t *testing.T) {
	g := mustGrid(t, 13, 17, 0.25)
	v, err := series.SolveGrid(g, 2.5, 61)
	require.NoError(t, err)

	r, c := v.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, 0, at(t, v, i, j)+at(t, v, r-1-i, j), 1e-9, "flip y at (%d,%d)", i, j)
			require.InDelta(t, at(t, v, i, j), at(t, v, i, c-1-j), 1e-9, "flip x at (%d,%d)", i, j)
		}
	}
}

// TestSolve_ModesAgree compares the two evaluations where neither overflows.
func TestSolve_ModesAgree(t *testing.T) {
	g := mustGrid(t, 5, 5, 0.5)
	stable, err := series.SolveGrid(g, 1, 5)
	require.NoError(t, err)
	direct, err := series.SolveGrid(g, 1, 5, series.WithEvaluation(series.EvalDirect))
	require.NoError(t, err)

	require.InDeltaSlice(t, stable.Raw(), direct.Raw(), 1e-8, "stable:\n%v\ndirect:\n%v", stable, direct)
}

// TestSolve_DirectOverflow verifies a tall box overflows the literal form
// and the stable form stays finite.
func TestSolve_DirectOverflow(t *testing.T) {
	p := series.Params{A: 1, B: 300, V0: 1, Terms: 9}
	x, _ := matrix.NewDenseFrom(1, 3, []float64{0.25, 0.5, 0.75})
	y, _ := matrix.NewDenseFrom(1, 3, []float64{300, 300, 300})

	_, err := series.Solve(x, y, p, series.WithEvaluation(series.EvalDirect))
	require.ErrorIs(t, err, series.ErrNumericOverflow)

	_, err = series.Potential(0.5, 300, p, series.EvalDirect)
	require.ErrorIs(t, err, series.ErrNumericOverflow)

	v, err := series.Solve(x, y, p)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(v))
	require.InDelta(t, 1, at(t, v, 0, 1), 0.1)
}

// TestPotential_Errors checks the single-point guards.
func TestPotential_Errors(t *testing.T) {
	_, err := series.Potential(0, 0, series.Params{A: 1, B: 1, V0: 1, Terms: -2}, series.EvalStable)
	require.ErrorIs(t, err, series.ErrBadTerms)

	_, err = series.Potential(0, 0, series.Params{A: 1, B: 1, V0: 1, Terms: 1}, series.Evaluation(-1))
	require.ErrorIs(t, err, series.ErrOptionViolation)
}

// TestParseEvaluation round-trips the textual names.
func TestParseEvaluation(t *testing.T) {
	for _, m := range []series.Evaluation{series.EvalStable, series.EvalDirect} {
		got, err := series.ParseEvaluation(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := series.ParseEvaluation("fast")
	require.ErrorIs(t, err, series.ErrOptionViolation)
}
