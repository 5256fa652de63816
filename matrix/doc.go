// Package matrix provides the immutable dense payload carried by matrix
// leaves of a symbolic product expression.
//
// The matrix package provides:
//
//   - Dense: a row-major, rectangular, non-empty table of float64 values,
//     snapshotted at construction (New, FromMat) and never mutated afterwards.
//   - Exact predicates: IsIdentity (Kronecker delta, IEEE ==) and Equal
//     (same shape, element-wise IEEE ==), both routed through gonum's mat.Equal.
//   - Hash, consistent with Equal.
//   - FormatValue / FormatRow and Dense.String, the stable textual form
//     ("Matrix[[1.0, 2.0]; [3.0, 4.0]]").
//   - gonum interop: Mat (zero-copy read-only view), ToMat (independent copy).
//
// Construction failures are reported with the sentinels ErrEmpty and
// ErrNonRectangular; match them with errors.Is.
//
// See the examples in this package and in expr for usage patterns.
package matrix
