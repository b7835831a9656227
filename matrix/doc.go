// SPDX-License-Identifier: MIT

// Package matrix offers the dense float64 storage shared by the grid,
// relaxation and series packages.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c matrix whose At/Set return sentinel errors
//     instead of panicking, with an optional finite-only numeric policy.
//   - MatrixView: a no-copy window; the relaxation residual walks the
//     interior of a field through it.
//   - Validators (ValidateNotNil, ValidateSameShape, ValidateMinShape,
//     ValidateFinite) used as the single source of guard logic.
//   - ToMat for gonum's mat package and Range built on gonum/floats.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrBadShape, ErrOutOfRange,
//     ErrDimensionMismatch, ErrNaNInf, ErrNilMatrix.
//
// See the examples in this package for usage patterns.
package matrix
