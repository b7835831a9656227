// SPDX-License-Identifier: MIT

// Package relax solves Laplace's equation on a rectangular potential field by
// in-place Gauss–Seidel relaxation.
//
// Each pass visits the interior cells in row-major order (rows 1..R−2 outer,
// columns 1..C−2 inner) and replaces every cell by the mean of its four
// orthogonal neighbours, reading values already updated earlier in the same
// pass. Boundary cells are never written.
//
// Convergence:
//
//   - Every pass tracks one signed delta (new − old). After the full sweep,
//     if |delta| < tolerance the solve stops and reports the pass count.
//   - TrackMaxAbs (default) keeps the delta of greatest magnitude.
//     TrackReference keeps the historical rule that replaces the tracked
//     value whenever |delta| exceeds the tracked SIGNED value; once a large
//     negative delta is seen it degrades to following the latest delta and
//     can stop early.
//   - Running out of passes is not an error: Result.Converged is false and
//     Result.Iterations equals the cap.
//
// Options:
//
//   - WithMaxIterations (default 1000), WithTolerance (default 1e-4),
//     WithDeltaTracking, WithProgress.
//
// Errors:
//
//   - ErrNilField, ErrFieldTooSmall (fewer than 3 rows or columns),
//     ErrOptionViolation, and matrix.ErrNaNInf for non-finite input.
//
// Complexity: O(MaxIterations × R × C) time, O(1) extra memory.
package relax
