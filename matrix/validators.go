// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for payload validation checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Composite checks follow a fixed sequence: shape → numeric policy.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows reports whether rows form a non-empty rectangular table.
//
// Inputs: caller-owned 2-D slice (not retained).
// Returns ErrEmpty when len(rows)==0 or the first offending row has length 0,
// ErrNonRectangular when a row length differs from len(rows[0]).
// Rows are scanned top-down, so the first violation decides the error.
// Complexity: O(len(rows)).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", ErrEmpty)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) == 0 {
			return validatorErrorf(fmt.Sprintf("ValidateRows(row %d)", i), ErrEmpty)
		}
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows(row %d)", i), ErrNonRectangular)
		}
	}

	return nil
}

// ValidateFinite ensures every value is neither NaN nor ±Inf.
// Returns ErrNaNInf tagged with the flat offset of the first bad entry.
// Complexity: O(len(data)).
func ValidateFinite(data []float64) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite(offset %d)", i), ErrNaNInf)
		}
	}

	return nil
}
