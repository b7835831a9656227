// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/laplace/matrix"
)

// InitialField returns a rows×cols potential field with a zero interior and
// the edges fixed to b. Top and bottom rows are written first, then the left
// and right columns, so corner cells take the side values.
//
// Errors:
//   - ErrTooFewPoints if rows or cols < 2.
//   - matrix.ErrNaNInf if an edge value is NaN or ±Inf.
//
// Complexity: O(rows×cols).
func InitialField(rows, cols int, b Boundary) (*matrix.Dense, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("grid.InitialField(%d,%d): %w", rows, cols, ErrTooFewPoints)
	}
	v, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	err = v.Apply(func(i, j int, _ float64) float64 {
		switch {
		case j == 0:
			return b.Left
		case j == cols-1:
			return b.Right
		case i == 0:
			return b.Top
		case i == rows-1:
			return b.Bottom
		}
		return 0
	})
	if err != nil {
		return nil, fmt.Errorf("grid.InitialField: %w", err)
	}

	return v, nil
}

// FieldFor is InitialField sized to g.
func (g *Grid) FieldFor(b Boundary) (*matrix.Dense, error) {
	return InitialField(g.rows, g.cols, b)
}
