// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/laplace/matrix"
	"gonum.org/v1/gonum/floats"
)

// New constructs a rows×cols Grid with spacing dx.
// x runs over [0, (cols−1)·dx] along columns, y over [0, (rows−1)·dx] along rows.
// Returns ErrTooFewPoints if rows or cols < 2, ErrBadStep for dx ≤ 0, NaN or Inf,
// or when an extent overflows to Inf.
// Complexity: O(rows + cols); the meshes are materialized lazily by X and Y.
func New(rows, cols int, dx float64) (*Grid, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrTooFewPoints)
	}
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("grid.New: dx=%g: %w", dx, ErrBadStep)
	}
	a, b := float64(cols-1)*dx, float64(rows-1)*dx
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("grid.New: extent %gx%g: %w", a, b, ErrBadStep)
	}
	xs := floats.Span(make([]float64, cols), 0, a)
	ys := floats.Span(make([]float64, rows), 0, b)

	return &Grid{rows: rows, cols: cols, dx: dx, xs: xs, ys: ys}, nil
}

// Rows returns the number of points along y.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of points along x.
func (g *Grid) Cols() int { return g.cols }

// Step returns the spacing dx (= dy).
func (g *Grid) Step() float64 { return g.dx }

// Width returns the x extent a = (cols−1)·dx.
func (g *Grid) Width() float64 { return float64(g.cols-1) * g.dx }

// Height returns the y extent b = (rows−1)·dx.
func (g *Grid) Height() float64 { return float64(g.rows-1) * g.dx }

// Xs returns a copy of the x axis (length Cols).
func (g *Grid) Xs() []float64 { return append([]float64(nil), g.xs...) }

// Ys returns a copy of the y axis (length Rows).
func (g *Grid) Ys() []float64 { return append([]float64(nil), g.ys...) }

// X returns the rows×cols mesh with X[i][j] = x_j.
func (g *Grid) X() *matrix.Dense {
	// Shape and finite axes are guaranteed by New, so neither call can fail.
	m, _ := matrix.NewDense(g.rows, g.cols)
	_ = m.Apply(func(_, j int, _ float64) float64 { return g.xs[j] })

	return m
}

// Y returns the rows×cols mesh with Y[i][j] = y_i.
func (g *Grid) Y() *matrix.Dense {
	m, _ := matrix.NewDense(g.rows, g.cols)
	_ = m.Apply(func(i, _ int, _ float64) float64 { return g.ys[i] })

	return m
}

// Mesh returns both coordinate matrices, like numpy's meshgrid(x, y).
func (g *Grid) Mesh() (x, y *matrix.Dense) {
	return g.X(), g.Y()
}

// IsBoundary reports whether (i,j) is an edge cell of a rows×cols field.
func IsBoundary(rows, cols, i, j int) bool {
	return i == 0 || j == 0 || i == rows-1 || j == cols-1
}
