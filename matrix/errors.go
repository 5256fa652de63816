// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors (Must* helpers,
// invalid option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// empty -> non-rectangular -> NaN/Inf policy.

var (
	// ErrEmpty is returned when a payload has zero rows or a zero-length row.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonRectangular is returned when rows of a payload differ in length.
	ErrNonRectangular = errors.New("matrix: rows differ in length")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	// The policy is off by default; see WithValidateNaNInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil gonum matrix was passed to FromMat.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
