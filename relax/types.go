// SPDX-License-Identifier: MIT

// Package relax provides tunable options and error definitions
// for relaxation over a potential field.
package relax

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for relaxation.
var (
	// ErrNilField is returned if a nil field is passed.
	ErrNilField = errors.New("relax: field is nil")

	// ErrFieldTooSmall is returned when the field has no interior cell
	// (fewer than 3 rows or columns).
	ErrFieldTooSmall = errors.New("relax: field needs at least 3 rows and 3 columns")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")
)

// Defaults mirror the historical solver parameters.
const (
	// DefaultMaxIterations caps the number of full passes.
	DefaultMaxIterations = 1000
	// DefaultTolerance is the convergence threshold on |delta|.
	DefaultTolerance = 1e-4
)

// DeltaTracking selects how the per-pass delta is tracked.
type DeltaTracking int

const (
	// TrackMaxAbs keeps the signed delta with the greatest magnitude.
	TrackMaxAbs DeltaTracking = iota
	// TrackReference replaces the tracked delta whenever |vf| > tracked,
	// comparing against the signed tracked value.
	TrackReference
)

// String implements fmt.Stringer.
func (d DeltaTracking) String() string {
	switch d {
	case TrackMaxAbs:
		return "maxabs"
	case TrackReference:
		return "reference"
	}
	return fmt.Sprintf("DeltaTracking(%d)", int(d))
}

// ParseDeltaTracking maps "maxabs" or "reference" to a DeltaTracking.
func ParseDeltaTracking(s string) (DeltaTracking, error) {
	switch s {
	case "maxabs":
		return TrackMaxAbs, nil
	case "reference":
		return TrackReference, nil
	}
	return 0, fmt.Errorf("%w: unknown delta tracking %q", ErrOptionViolation, s)
}

// Progress is the snapshot handed to a ProgressFunc.
type Progress struct {
	Iteration     int     // passes completed so far
	MaxIterations int     // configured cap
	Delta         float64 // tracked delta of the last pass
}

// ProgressFunc receives periodic progress snapshots.
type ProgressFunc func(Progress)

// Option configures relaxation via functional arguments.
// If an Option is invalid (e.g. negative cap), it is recorded internally
// and surfaced as ErrOptionViolation by New or Solve.
type Option func(*Options)

// Options holds the parameters and hook of a Solver.
type Options struct {
	// MaxIterations is the pass cap Nit. Zero leaves the field untouched.
	MaxIterations int

	// Tolerance stops the solve once |delta| < Tolerance after a pass.
	Tolerance float64

	// Tracking selects the delta rule.
	Tracking DeltaTracking

	// ProgressEvery is the pass interval between OnProgress calls.
	ProgressEvery int

	// OnProgress, when set, is called every ProgressEvery passes and once
	// after the final pass.
	OnProgress ProgressFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - MaxIterations = DefaultMaxIterations
//   - Tolerance = DefaultTolerance
//   - Tracking = TrackMaxAbs
//   - no progress hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Tracking:      TrackMaxAbs,
		ProgressEvery: 0,
		OnProgress:    nil,
	}
}

// fail records the first option violation.
func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithMaxIterations sets the pass cap.
//
//	n > 0: at most n passes
//	n == 0: no passes, the field is returned unchanged
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("MaxIterations cannot be negative (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the convergence threshold; it must be positive and finite.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.fail("Tolerance must be positive and finite (%g)", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithDeltaTracking selects the delta rule.
func WithDeltaTracking(mode DeltaTracking) Option {
	return func(o *Options) {
		if mode != TrackMaxAbs && mode != TrackReference {
			o.fail("unknown delta tracking %d", int(mode))
			return
		}
		o.Tracking = mode
	}
}

// WithProgress registers fn to run after every `every` passes and after the
// final pass. every must be positive; a nil fn is ignored.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(o *Options) {
		if every <= 0 {
			o.fail("ProgressEvery must be positive (%d)", every)
			return
		}
		if fn != nil {
			o.ProgressEvery = every
			o.OnProgress = fn
		}
	}
}

// Result reports how a solve ended.
type Result struct {
	// Iterations is the number of passes performed: the pass at which the
	// tolerance was met, or MaxIterations when the budget ran out.
	// Counting starts at 1, so it is one more than the zero-based loop index
	// printed by the classic script.
	Iterations int

	// Converged is true when |Delta| < Tolerance after pass Iterations.
	Converged bool

	// Delta is the tracked delta of the last pass (0 when no pass ran).
	Delta float64

	// Residual is max |v − mean of neighbours| over the interior after the solve.
	Residual float64
}
