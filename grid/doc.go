// SPDX-License-Identifier: MIT

// Package grid builds the rectangular domain of the potential problem:
// coordinate meshes and the initial potential field with fixed edges.
//
// What:
//
//   - Grid holds uniformly spaced coordinate matrices X, Y (dx = dy).
//     Row index i maps to y = i·dx, column index j maps to x = j·dx.
//   - InitialField builds the Dirichlet field: zero interior, fixed edges.
//     Row 0 of a field is the TOP edge (y = b), the last row the BOTTOM.
//   - Conn4 lists the orthogonal neighbour offsets used by stencils.
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - InitialField: O(R×C) time and memory.
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two points along an axis.
//   - ErrBadStep: step is non-positive or non-finite.
package grid
