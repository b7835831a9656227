// Package laplace solves the two-dimensional Laplace equation for the
// parallel-plate box, numerically and analytically, and draws both answers.
//
// What is in the box?
//
//	  y=b  +V0 +V0 +V0 +V0 +V0
//	        0   .   .   .   0
//	        0   .   .   .   0      . interior, relaxed
//	        0   .   .   .   0      0 grounded side walls
//	  y=0  -V0 -V0 -V0 -V0 -V0
//	       x=0             x=a
//
// Packages, leaf first:
//
//	matrix/       row-major Dense storage, validators, gonum interop
//	grid/         coordinate meshes and the initial field with fixed edges
//	relax/        in-place Gauss–Seidel relaxation with progress hook
//	series/       truncated odd-harmonic Fourier series reference
//	compare/      interior error metrics between the two solutions
//	render/       contour PNG (gonum/plot) and 3D surface HTML (go-echarts)
//	cmd/laplace/  command-line driver
//
// Quick start:
//
//	g, _ := grid.New(50, 50, 0.2)
//	v, _ := g.FieldFor(grid.Dipole(5))
//	res, _ := relax.Solve(v, relax.WithTolerance(1e-4))
//	exact, _ := series.SolveGrid(g, 5, 50)
//	rep, _ := compare.Fields(v, exact)
//	fmt.Println(res.Iterations, rep.MaxAbs)
//
// Orientation: a relaxed field keeps the top plate in row 0; meshes and the
// series field put y = 0 in row 0. FlipRows converts the former.
package laplace
