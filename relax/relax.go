// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"
	"math"

	"github.com/katalvlaran/laplace/grid"
	"github.com/katalvlaran/laplace/matrix"
)

// Solver runs Gauss–Seidel relaxation with a fixed configuration.
// A Solver holds no per-solve state and may be reused.
type Solver struct {
	opts Options
}

// New builds a Solver from DefaultOptions overridden by opts.
// Returns ErrOptionViolation (wrapped) if any option was invalid.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{opts: o}, nil
}

// Options returns the effective configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve is shorthand for New(opts...) followed by Solve(field).
func Solve(field *matrix.Dense, opts ...Option) (Result, error) {
	s, err := New(opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(field)
}

// Solve relaxes field in place until the tracked delta drops below the
// tolerance or MaxIterations passes have run.
//
// Implementation:
//   - Stage 1: validate the field (non-nil, ≥ 3×3, finite).
//   - Stage 2: sweep interior cells row-major, in place, tracking delta.
//   - Stage 3: stop on |delta| < tol or at the cap; report progress.
//   - Stage 4: measure the residual of the final field.
//
// Errors:
//   - ErrNilField, ErrFieldTooSmall, matrix.ErrNaNInf (wrapped).
//
// Complexity:
//   - Time O(MaxIterations·R·C), Space O(1).
func (s *Solver) Solve(field *matrix.Dense) (Result, error) {
	if err := validateField(field); err != nil {
		return Result{}, err
	}
	var (
		res   Result
		r, c  = field.Shape()
		data  = field.Raw()
		nit   = s.opts.MaxIterations
		every = s.opts.ProgressEvery
	)
	for it := 1; it <= nit; it++ {
		res.Delta = s.sweep(data, r, c)
		res.Iterations = it
		res.Converged = math.Abs(res.Delta) < s.opts.Tolerance
		if res.Converged || it == nit || (every > 0 && it%every == 0) {
			s.report(res)
		}
		if res.Converged {
			break
		}
	}
	res.Residual = residual(field)

	return res, nil
}

// sweep performs one in-place pass and returns the tracked delta.
// Neighbour order (down, up, right, left) is fixed so results are reproducible.
func (s *Solver) sweep(data []float64, r, c int) float64 {
	var dmax, avg, vf float64
	ref := s.opts.Tracking == TrackReference
	for i := 1; i < r-1; i++ {
		base := i * c
		for j := 1; j < c-1; j++ {
			k := base + j
			avg = (data[k+c] + data[k-c] + data[k+1] + data[k-1]) / 4
			vf = avg - data[k]
			data[k] = avg
			if ref {
				if math.Abs(vf) > dmax {
					dmax = vf
				}
			} else if math.Abs(vf) > math.Abs(dmax) {
				dmax = vf
			}
		}
	}

	return dmax
}

// report forwards a snapshot to the progress hook, if any.
func (s *Solver) report(res Result) {
	if s.opts.OnProgress == nil {
		return
	}
	s.opts.OnProgress(Progress{
		Iteration:     res.Iterations,
		MaxIterations: s.opts.MaxIterations,
		Delta:         res.Delta,
	})
}

// Residual returns max |v − mean of the four neighbours| over interior cells.
// At convergence every interior cell satisfies the discrete mean-value
// property to within the solver tolerance.
// Errors: ErrNilField, ErrFieldTooSmall, matrix.ErrNaNInf.
func Residual(field *matrix.Dense) (float64, error) {
	if err := validateField(field); err != nil {
		return 0, err
	}

	return residual(field), nil
}

// residual walks the interior window of field; field is at least 3×3.
func residual(field *matrix.Dense) float64 {
	r, c := field.Shape()
	inner, _ := field.View(1, 1, r-2, c-2)
	data := field.Raw()
	var worst float64
	inner.Do(func(_, _, k int, v float64) bool {
		var sum float64
		for _, d := range grid.Conn4 {
			sum += data[k+d[0]*c+d[1]]
		}
		worst = math.Max(worst, math.Abs(v-sum/4))
		return true
	})

	return worst
}

// validateField applies the NotNil → Shape → Finite sequence.
func validateField(field *matrix.Dense) error {
	if field == nil {
		return ErrNilField
	}
	if err := matrix.ValidateMinShape(field, 3, 3); err != nil {
		return fmt.Errorf("%w: %v", ErrFieldTooSmall, err)
	}
	if err := matrix.ValidateFinite(field); err != nil {
		return fmt.Errorf("relax: %w", err)
	}

	return nil
}
