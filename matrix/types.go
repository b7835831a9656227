// SPDX-License-Identifier: MIT

// Package matrix: read-side interface implemented by Dense.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only surface consumed by validators and comparisons.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
