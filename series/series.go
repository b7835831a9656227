// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"

	"github.com/katalvlaran/laplace/grid"
	"github.com/katalvlaran/laplace/matrix"
)

// Solve evaluates the series at every (X[i][j], Y[i][j]).
//
// Implementation:
//   - Stage 1: validate meshes (non-nil, same shape), params and options.
//   - Stage 2: V0 == 0 or Terms == 0 short-circuits to a zero field.
//   - Stage 3: evaluate Potential cell by cell.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped).
//   - ErrBadDomain, ErrBadTerms, ErrOptionViolation.
//   - ErrNumericOverflow (EvalDirect on large b/a), wrapped with the cell.
//
// Complexity:
//   - Time O(R·C·Terms), Space O(R·C).
func Solve(x, y *matrix.Dense, p Params, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("series: x: %w", err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, fmt.Errorf("series: y: %w", err)
	}
	if err := matrix.ValidateSameShape(x, y); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	r, c := x.Shape()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	if p.V0 == 0 || p.Terms == 0 {
		return out, nil
	}

	xs, ys, vs := x.Raw(), y.Raw(), out.Raw()
	for k := range vs {
		v, err := potential(xs[k], ys[k], p, o.Evaluation)
		if err != nil {
			return nil, fmt.Errorf("series: cell (%d,%d): %w", k/c, k%c, err)
		}
		vs[k] = v
	}

	return out, nil
}

// SolveGrid evaluates the series over g with a = g.Width() and b = g.Height().
func SolveGrid(g *grid.Grid, v0 float64, terms int, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("series: grid: %w", matrix.ErrNilMatrix)
	}
	x, y := g.Mesh()

	return Solve(x, y, Params{A: g.Width(), B: g.Height(), V0: v0, Terms: terms}, opts...)
}

// Potential evaluates the truncated series at a single point.
func Potential(x, y float64, p Params, mode Evaluation) (float64, error) {
	if err := validateParams(p); err != nil {
		return 0, err
	}
	if mode != EvalStable && mode != EvalDirect {
		return 0, fmt.Errorf("%w: unknown evaluation %d", ErrOptionViolation, int(mode))
	}

	return potential(x, y, p, mode)
}

func potential(x, y float64, p Params, mode Evaluation) (float64, error) {
	var sum float64
	for n := 1; n <= p.Terms; n += 2 {
		k := float64(n) * math.Pi / p.A
		var br float64
		if mode == EvalDirect {
			br = bracketDirect(k, y, p.B)
		} else {
			br = bracketStable(k, y, p.B)
		}
		// ((−1)^n − 1) = −2 for odd n.
		term := -4 * p.V0 / (math.Pi * float64(n)) * math.Sin(k*x) * br
		sum += term
		if isNonFinite(term) || isNonFinite(sum) {
			return 0, fmt.Errorf("%w at harmonic n=%d (x=%g, y=%g)", ErrNumericOverflow, n, x, y)
		}
	}

	return sum, nil
}

// bracketDirect is cosh(ky) − (coth(kb) + csch(kb))·sinh(ky).
func bracketDirect(k, y, b float64) float64 {
	kb := k * b
	coth := 1 / math.Tanh(kb)
	csch := 1 / math.Sinh(kb)

	return math.Cosh(k*y) - (coth+csch)*math.Sinh(k*y)
}

// bracketStable is [sinh(k(b−y)) − sinh(ky)] / sinh(kb).
func bracketStable(k, y, b float64) float64 {
	kb := k * b

	return sinhRatio(k*(b-y), kb) - sinhRatio(k*y, kb)
}

// sinhRatio returns sinh(u)/sinh(v) for v > 0 as e^{u−v}·expm1(−2u)/expm1(−2v).
func sinhRatio(u, v float64) float64 {
	if u == 0 {
		return 0
	}

	return math.Exp(u-v) * math.Expm1(-2*u) / math.Expm1(-2*v)
}

func validateParams(p Params) error {
	if !(p.A > 0) || !(p.B > 0) || math.IsInf(p.A, 0) || math.IsInf(p.B, 0) {
		return fmt.Errorf("%w: a=%g b=%g", ErrBadDomain, p.A, p.B)
	}
	if isNonFinite(p.V0) {
		return fmt.Errorf("%w: V0=%g", ErrBadDomain, p.V0)
	}
	if p.Terms < 0 {
		return fmt.Errorf("%w: %d", ErrBadTerms, p.Terms)
	}

	return nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
