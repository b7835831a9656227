// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

// Sentinel errors for series evaluation.
var (
	// ErrBadDomain is returned for non-positive or non-finite extents, or a
	// non-finite V0.
	ErrBadDomain = errors.New("series: extents must be positive and finite, V0 finite")

	// ErrBadTerms is returned for a negative harmonic count.
	ErrBadTerms = errors.New("series: term count must be >= 0")

	// ErrNumericOverflow is returned when a term or partial sum is NaN or ±Inf.
	ErrNumericOverflow = errors.New("series: numeric overflow")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("series: invalid option supplied")
)

// Params describes the box and the truncation.
type Params struct {
	A     float64 // x extent
	B     float64 // y extent
	V0    float64 // plate potential magnitude
	Terms int     // harmonics n = 1..Terms
}

// Evaluation selects how the hyperbolic bracket is computed.
type Evaluation int

const (
	// EvalStable uses the sinh-ratio form.
	EvalStable Evaluation = iota
	// EvalDirect uses cosh/sinh/coth/csch literally.
	EvalDirect
)

// String implements fmt.Stringer.
func (e Evaluation) String() string {
	switch e {
	case EvalStable:
		return "stable"
	case EvalDirect:
		return "direct"
	}
	return fmt.Sprintf("Evaluation(%d)", int(e))
}

// ParseEvaluation maps "stable" or "direct" to an Evaluation.
func ParseEvaluation(s string) (Evaluation, error) {
	switch s {
	case "stable":
		return EvalStable, nil
	case "direct":
		return EvalDirect, nil
	}
	return 0, fmt.Errorf("%w: unknown evaluation %q", ErrOptionViolation, s)
}

// Option configures Solve.
type Option func(*Options)

// Options holds the evaluation settings.
type Options struct {
	Evaluation Evaluation

	err error
}

// DefaultOptions returns Options with Evaluation = EvalStable.
func DefaultOptions() Options {
	return Options{Evaluation: EvalStable}
}

// WithEvaluation selects the bracket evaluation mode.
func WithEvaluation(mode Evaluation) Option {
	return func(o *Options) {
		if mode != EvalStable && mode != EvalDirect {
			if o.err == nil {
				o.err = fmt.Errorf("%w: unknown evaluation %d", ErrOptionViolation, int(mode))
			}
			return
		}
		o.Evaluation = mode
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
