// SPDX-License-Identifier: MIT

// Package expr - leaf variants: Identity, Scalar, Matrix.

package expr

import (
	"fmt"

	"github.com/katalvlaran/matexpr/matrix"
	"gonum.org/v1/gonum/mat"
)

// ---------- Identity ----------

// Identity is the multiplicative identity sentinel. It carries no data;
// every Identity value equals every other.
type Identity struct{}

// I is the canonical identity expression.
var I Identity

// Kind returns KindIdentity.
func (Identity) Kind() Kind { return KindIdentity }

// String returns "I".
func (Identity) String() string { return "I" }

func (Identity) isExpr() {}

// ---------- Scalar ----------

// Scalar is a real scalar leaf. Any float64 is admissible, including NaN,
// ±Inf and -0.
type Scalar struct {
	value float64
}

// Make returns a Scalar leaf holding v. No value is rejected.
func Make(v float64) *Scalar { return &Scalar{value: v} }

// Value returns the scalar value.
func (s *Scalar) Value() float64 { return s.value }

// Kind returns KindScalar.
func (*Scalar) Kind() Kind { return KindScalar }

// String renders the value with matrix.FormatValue ("1.0", "2.5", "1.0E7").
func (s *Scalar) String() string { return matrix.FormatValue(s.value) }

func (*Scalar) isExpr() {}

// ---------- Matrix ----------

// Matrix is a dense matrix leaf. It owns an immutable payload snapshotted at
// construction; a 1×1 Matrix is never treated as a Scalar.
type Matrix struct {
	payload *matrix.Dense
}

// MakeMatrix snapshots rows into a Matrix leaf.
// MAIN DESCRIPTION:
//   - Validates the table and copies it; later mutation of rows has no effect.
//
// Errors:
//   - matrix.ErrEmpty on zero rows or a zero-length row.
//   - matrix.ErrNonRectangular on rows of differing length.
//   - matrix.ErrNaNInf only under matrix.WithValidateNaNInf().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MakeMatrix(rows [][]float64, opts ...matrix.Option) (*Matrix, error) {
	d, err := matrix.New(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("expr.MakeMatrix: %w", err)
	}

	return &Matrix{payload: d}, nil
}

// MustMatrix is like MakeMatrix but panics on error. Intended for literals
// in tests and examples, where a malformed table is a programmer error.
func MustMatrix(rows [][]float64, opts ...matrix.Option) *Matrix {
	m, err := MakeMatrix(rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromMat builds a Matrix leaf from a snapshot of any gonum matrix.
// Errors are those of matrix.FromMat.
func FromMat(src mat.Matrix, opts ...matrix.Option) (*Matrix, error) {
	d, err := matrix.FromMat(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("expr.FromMat: %w", err)
	}

	return &Matrix{payload: d}, nil
}

// FromDense wraps an existing payload. Dense is immutable, so no copy is made.
// Panics on a nil payload.
func FromDense(d *matrix.Dense) *Matrix {
	if d == nil {
		panic(panicNilExpr)
	}

	return &Matrix{payload: d}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.payload.Rows() }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.payload.Cols() }

// Array returns a fresh copy of the row data.
func (m *Matrix) Array() [][]float64 { return m.payload.Array() }

// Dense returns the immutable payload (shared, not copied).
func (m *Matrix) Dense() *matrix.Dense { return m.payload }

// Kind returns KindMatrix.
func (*Matrix) Kind() Kind { return KindMatrix }

// String renders "Matrix[[a, b]; [c, d]]".
func (m *Matrix) String() string { return m.payload.String() }

func (*Matrix) isExpr() {}
