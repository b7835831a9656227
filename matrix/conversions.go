// SPDX-License-Identifier: MIT

// Package matrix: conversion to gonum's mat package and reductions built
// on gonum/floats.
package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ToMat copies m into a new gonum *mat.Dense.
// Complexity: O(r*c).
func ToMat(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, validatorErrorf("ToMat", ErrNilMatrix)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// Range returns the minimum and maximum element of m.
// Complexity: O(r*c).
func Range(m *Dense) (lo, hi float64, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, validatorErrorf("Range", err)
	}

	return floats.Min(m.data), floats.Max(m.data), nil
}
