// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/laplace/relax"
	"github.com/katalvlaran/laplace/render"
	"github.com/katalvlaran/laplace/series"
)

// ErrInvalidConfig wraps every configuration failure reported by Validate.
var ErrInvalidConfig = errors.New("app: invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Rows int
	Cols int
	Dx   float64
	V0   float64

	MaxIterations int
	Tolerance     float64
	Tracking      string
	ProgressEvery int

	Terms      int
	Evaluation string

	Levels int
	OutDir string
	Serve  string
}

// NewConfig returns a Config populated with the classic 50×50 problem.
func NewConfig() *Config {
	return &Config{
		Rows:          50,
		Cols:          50,
		Dx:            0.2,
		V0:            5,
		MaxIterations: relax.DefaultMaxIterations,
		Tolerance:     relax.DefaultTolerance,
		Tracking:      relax.TrackMaxAbs.String(),
		ProgressEvery: 100,
		Terms:         50,
		Evaluation:    series.EvalStable.String(),
		Levels:        render.DefaultLevels,
		OutDir:        ".",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid points along y")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid points along x")
	fs.Float64Var(&c.Dx, "dx", c.Dx, "grid spacing (dx = dy)")
	fs.Float64Var(&c.V0, "v0", c.V0, "plate potential; top +v0, bottom -v0")
	fs.IntVar(&c.MaxIterations, "nit", c.MaxIterations, "maximum relaxation passes")
	fs.Float64Var(&c.Tolerance, "tol", c.Tolerance, "convergence tolerance on the pass delta")
	fs.StringVar(&c.Tracking, "delta", c.Tracking, "delta tracking: maxabs or reference")
	fs.IntVar(&c.ProgressEvery, "progress-every", c.ProgressEvery, "log progress every N passes (0 disables)")
	fs.IntVar(&c.Terms, "terms", c.Terms, "Fourier harmonics in the analytic solution")
	fs.StringVar(&c.Evaluation, "eval", c.Evaluation, "series evaluation: stable or direct")
	fs.IntVar(&c.Levels, "levels", c.Levels, "contour levels per figure")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "directory for figures (empty disables)")
	fs.StringVar(&c.Serve, "serve", c.Serve, "serve the surface page on this address, e.g. :8080")
}

// Validate checks ranges and parses the enumerated flags.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 3 || c.Cols < 3:
		return fmt.Errorf("%w: grid %dx%d needs at least 3x3 points", ErrInvalidConfig, c.Rows, c.Cols)
	case !(c.Dx > 0):
		return fmt.Errorf("%w: dx %g must be positive", ErrInvalidConfig, c.Dx)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: nit %d must be >= 0", ErrInvalidConfig, c.MaxIterations)
	case !(c.Tolerance > 0):
		return fmt.Errorf("%w: tol %g must be positive", ErrInvalidConfig, c.Tolerance)
	case c.ProgressEvery < 0:
		return fmt.Errorf("%w: progress-every %d must be >= 0", ErrInvalidConfig, c.ProgressEvery)
	case c.Terms < 0:
		return fmt.Errorf("%w: terms %d must be >= 0", ErrInvalidConfig, c.Terms)
	case c.Levels < 0:
		return fmt.Errorf("%w: levels %d must be >= 0", ErrInvalidConfig, c.Levels)
	}
	if _, err := relax.ParseDeltaTracking(c.Tracking); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := series.ParseEvaluation(c.Evaluation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// solverOptions translates the relaxation flags; progress is wired by the caller.
func (c *Config) solverOptions() []relax.Option {
	mode, _ := relax.ParseDeltaTracking(c.Tracking)

	return []relax.Option{
		relax.WithMaxIterations(c.MaxIterations),
		relax.WithTolerance(c.Tolerance),
		relax.WithDeltaTracking(mode),
	}
}

func (c *Config) seriesOptions() []series.Option {
	mode, _ := series.ParseEvaluation(c.Evaluation)

	return []series.Option{series.WithEvaluation(mode)}
}
