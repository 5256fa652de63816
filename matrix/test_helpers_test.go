// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for payload tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matexpr/matrix"
)

// MustNew BUILDS a *Dense from rows or fails the test (fatal on error).
func MustNew(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// identityRows returns the n×n Kronecker delta as a fresh 2-D slice.
func identityRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}

	return rows
}
