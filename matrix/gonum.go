// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum/mat.
//
// Purpose:
//   - Expose a Dense as a read-only mat.Matrix without copying (safe: Dense is immutable).
//   - Snapshot any mat.Matrix into a Dense, and export a Dense as an independent *mat.Dense.
//   - Route exact comparisons through mat.Equal so equality and the identity
//     test share one element-wise IEEE == loop.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// matView adapts *Dense to mat.Matrix. At panics on out-of-range indices,
// matching the mat.Matrix contract.
type matView struct{ d *Dense }

var _ mat.Matrix = matView{}

// Dims returns the payload shape.
func (v matView) Dims() (r, c int) { return v.d.r, v.d.c }

// At returns the element at (i, j) or panics with mat.ErrIndexOutOfRange.
func (v matView) At(i, j int) float64 {
	off, err := v.d.indexOf(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.d.data[off]
}

// T returns the implicit transpose.
func (v matView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Mat returns a zero-copy, read-only mat.Matrix view of m.
// Complexity: O(1).
func (m *Dense) Mat() mat.Matrix { return matView{d: m} }

// ToMat returns an independent *mat.Dense holding a copy of m.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Dense) ToMat() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromMat snapshots a gonum matrix into a Dense.
// Implementation:
//   - Stage 1: reject nil (ErrNilMatrix) and zero-sized shapes (ErrEmpty).
//   - Stage 2: copy entries row-major via At.
//   - Stage 3: apply the finite-only policy when enabled.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromMat(src mat.Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if src == nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("Dense.%s(%dx%d): %w", ctxFromMat, r, c, ErrEmpty)
	}

	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = src.At(i, j)
		}
	}

	if o.validateNaNInf {
		if err := ValidateFinite(buf); err != nil {
			return nil, fmt.Errorf("Dense.%s: %w", ctxFromMat, err)
		}
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// equalMat is the single exact comparison used by Equal and IsIdentity.
func equalMat(a, b mat.Matrix) bool { return mat.Equal(a, b) }

// unitDiagonal returns the n×n identity as a gonum diagonal matrix (n ≥ 1).
func unitDiagonal(n int) mat.Matrix {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return mat.NewDiagDense(n, ones)
}
