// SPDX-License-Identifier: MIT

// Package matrix - immutable Dense payload (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Snapshot caller data at construction; no method mutates a built Dense.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep equality and the identity test exact (IEEE ==, so NaN != NaN and +0 == -0).
//
// Complexity quicksheet:
//   - New/FromMat: O(r*c); At/Rows/Cols: O(1); Array/ToMat: O(r*c); Equal/IsIdentity/Hash: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"     // ctor tag for New
	ctxFromMat = "FromMat" // ctor tag for FromMat
	ctxAt      = "At"      // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix payload.
//   - r,c hold dimensions (both ≥ 1 for every constructed value).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense may be shared freely between goroutines and expression nodes.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c), never written after construction
}

var _ fmt.Stringer = (*Dense)(nil)

// New snapshots a rectangular 2-D table into a Dense.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and an optional numeric policy.
//
// Implementation:
//   - Stage 1: ValidateRows (empty → ErrEmpty, ragged → ErrNonRectangular).
//   - Stage 2: copy rows into a fresh flat buffer (defensive snapshot).
//   - Stage 3: apply the finite-only policy when WithValidateNaNInf is set.
//
// Behavior highlights:
//   - The caller keeps ownership of rows; later mutation of rows has no effect.
//   - A 1×1 table is a legal matrix.
//
// Errors:
//   - ErrEmpty, ErrNonRectangular, ErrNaNInf (policy only), wrapped with "Dense.New".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxNew, err)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	if o.validateNaNInf {
		if err := ValidateFinite(buf); err != nil {
			return nil, fmt.Errorf("Dense.%s: %w", ctxNew, err)
		}
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Array returns a fresh 2-D copy of the payload.
// The result shares no storage with m; callers may mutate it freely.
// Complexity: O(r*c).
func (m *Dense) Array() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// IsIdentity reports whether m is square with m[i][j] == (i == j ? 1 : 0)
// under exact floating-point comparison.
// MAIN DESCRIPTION:
//   - Syntactic identity test; no tolerance is applied.
//
// Implementation:
//   - Stage 1: reject non-square shapes.
//   - Stage 2: compare against an n×n unit diagonal via mat.Equal.
//
// Behavior highlights:
//   - NaN anywhere ⇒ false; -0 off the diagonal counts as 0.
//
// Complexity:
//   - Time O(n²), Space O(n) for the diagonal.
func (m *Dense) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}

	return equalMat(m.Mat(), unitDiagonal(m.r))
}

// Equal reports whether a and b have the same shape and are element-wise
// equal under IEEE ==. Two nil payloads are equal; nil never equals non-nil.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}

	// No pointer short-circuit: a payload holding NaN is unequal to itself.
	return equalMat(a.Mat(), b.Mat())
}

// Hash returns a hash consistent with Equal: equal payloads hash equally.
// Implementation:
//   - Stage 1: seed with the shape.
//   - Stage 2: fold entries in row-major order as h = 31*h + bits(v),
//     with -0 normalized to +0 so that +0 == -0 hashes equally.
//
// Complexity: O(r*c).
func (m *Dense) Hash() uint64 {
	h := uint64(m.r)*31 + uint64(m.c)
	for _, v := range m.data {
		h = 31*h + floatBits(v)
	}

	return h
}

// floatBits returns the IEEE bits of v with -0 folded onto +0.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}

// HashValue exposes the scalar hash used for payload entries so expression
// leaves hash scalars the same way.
func HashValue(v float64) uint64 { return floatBits(v) }

// String renders the payload as "Matrix[[a, b]; [c, d]]".
// Each row follows FormatRow; rows are joined with "; ".
// Complexity: O(r*c).
func (m *Dense) String() string {
	return formatDense(m)
}
