// SPDX-License-Identifier: MIT

// Package compare measures how far a relaxed potential field lies from the
// series reference over interior cells.
package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/laplace/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNoInterior is returned for fields smaller than 3×3.
var ErrNoInterior = errors.New("compare: fields have no interior cells")

// Report summarizes |numeric − analytic| over interior cells.
// Row and Col locate MaxAbs in grid orientation (row 0 at y = 0).
type Report struct {
	MaxAbs  float64
	MeanAbs float64
	RMS     float64
	Row     int
	Col     int
	Cells   int
}

// String implements fmt.Stringer.
func (r Report) String() string {
	return fmt.Sprintf("max=%.6g at (%d,%d) mean=%.6g rms=%.6g over %d cells",
		r.MaxAbs, r.Row, r.Col, r.MeanAbs, r.RMS, r.Cells)
}

// Fields compares a relaxed field (row 0 is the top edge) with a series
// field in grid orientation (row 0 is y = 0). The numeric field is flipped
// before subtraction; boundary cells are excluded.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNoInterior.
// Complexity: O(R·C).
func Fields(numeric, analytic *matrix.Dense) (Report, error) {
	if err := matrix.ValidateNotNil(numeric); err != nil {
		return Report{}, fmt.Errorf("compare: numeric: %w", err)
	}
	if err := matrix.ValidateNotNil(analytic); err != nil {
		return Report{}, fmt.Errorf("compare: analytic: %w", err)
	}
	if err := matrix.ValidateSameShape(numeric, analytic); err != nil {
		return Report{}, fmt.Errorf("compare: %w", err)
	}
	r, c := numeric.Shape()
	if r < 3 || c < 3 {
		return Report{}, fmt.Errorf("%w: %dx%d", ErrNoInterior, r, c)
	}

	a, err := matrix.ToMat(numeric.FlipRows())
	if err != nil {
		return Report{}, fmt.Errorf("compare: %w", err)
	}
	b, err := matrix.ToMat(analytic)
	if err != nil {
		return Report{}, fmt.Errorf("compare: %w", err)
	}
	var diff mat.Dense
	diff.Sub(a, b)
	inner := diff.Slice(1, r-1, 1, c-1)

	ir, ic := inner.Dims()
	abs := make([]float64, 0, ir*ic)
	for i := 0; i < ir; i++ {
		for j := 0; j < ic; j++ {
			abs = append(abs, math.Abs(inner.At(i, j)))
		}
	}
	k := floats.MaxIdx(abs)
	n := float64(len(abs))

	return Report{
		MaxAbs:  abs[k],
		MeanAbs: floats.Sum(abs) / n,
		RMS:     floats.Norm(abs, 2) / math.Sqrt(n),
		Row:     1 + k/ic,
		Col:     1 + k%ic,
		Cells:   len(abs),
	}, nil
}
