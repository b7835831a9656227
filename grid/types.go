// SPDX-License-Identifier: MIT

// Package grid defines core types and sentinel errors for the grid package.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrTooFewPoints indicates fewer than two points along an axis.
	ErrTooFewPoints = errors.New("grid: need at least two points per axis")
	// ErrBadStep indicates a non-positive or non-finite spacing.
	ErrBadStep = errors.New("grid: step must be positive and finite")
)

// Conn4 lists the orthogonal neighbour offsets as {dRow, dCol}: up, right, down, left.
var Conn4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Boundary holds the fixed potential of each edge.
type Boundary struct {
	Top    float64 // row 0 (y = b)
	Bottom float64 // last row (y = 0)
	Left   float64 // column 0 (x = 0)
	Right  float64 // last column (x = a)
}

// Dipole returns the parallel-plate configuration: top = +v0, bottom = −v0,
// left = right = 0.
func Dipole(v0 float64) Boundary {
	return Boundary{Top: v0, Bottom: -v0, Left: 0, Right: 0}
}

// Grid is an immutable rectangular mesh with uniform spacing.
// The 1-D axes are stored once; X, Y and Mesh build fresh matrices on demand.
type Grid struct {
	rows, cols int
	dx         float64
	xs, ys     []float64 // 1-D axes: xs over columns, ys over rows
}
