// SPDX-License-Identifier: MIT

// Package render draws potential fields.
//
// One parameter set, Figure, drives every output:
//
//   - Contour writes a PNG heat map with contour lines and a vertical colour
//     bar, built on gonum/plot.
//   - Surface3D writes a standalone HTML page holding a 3D surface chart,
//     built on go-echarts.
//   - Page writes several surfaces on one HTML page.
//
// Inputs are Surface values in grid orientation: X, Y and Z share a shape and
// row 0 lies at y = 0. A relaxed field is flipped with matrix.(*Dense).FlipRows
// before rendering.
//
// The package writes to an io.Writer and never touches the filesystem.
package render
