// SPDX-License-Identifier: MIT

// Package series evaluates the closed-form potential of the parallel-plate
// box as a truncated odd-harmonic Fourier series.
//
// For a rectangle [0,a]×[0,b] with V(x,0) = −V0, V(x,b) = +V0 and grounded
// sides, the potential is
//
//	V(x,y) = Σ_{n=1..N} (2·V0/π)·((−1)^n − 1)/n · sin(nπx/a) ·
//	         [cosh(nπy/a) − (coth(nπb/a) + csch(nπb/a))·sinh(nπy/a)]
//
// Even harmonics vanish and are skipped.
//
// Two evaluation modes are provided:
//
//   - EvalStable (default) rewrites the bracket as
//     [sinh(k(b−y)) − sinh(ky)] / sinh(kb), with k = nπ/a, and evaluates the
//     sinh ratios through expm1. It never overflows and keeps high
//     harmonics that the literal form loses to cancellation.
//   - EvalDirect evaluates the bracket literally with cosh, sinh, coth and
//     csch. A non-finite intermediate yields ErrNumericOverflow.
//
// Solve and SolveGrid return the field in grid orientation: row i holds
// y = Y[i][·], so row 0 is the bottom plate.
//
// Errors:
//
//   - ErrBadDomain, ErrBadTerms, ErrNumericOverflow, ErrOptionViolation.
//   - matrix.ErrNilMatrix and matrix.ErrDimensionMismatch for bad meshes.
package series
