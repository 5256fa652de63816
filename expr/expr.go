// SPDX-License-Identifier: MIT

// Package expr - the expression node and its variant tag.
//
// Purpose:
//   - Define the sealed Expr interface implemented by exactly four variants:
//     Identity, *Scalar, *Matrix, *Product.
//   - Provide Kind, the explicit variant tag used by every structural operation.
//
// Determinism & Safety:
//   - All nodes are immutable after construction; sharing subtrees is safe.
//   - Only this package can add variants (unexported marker method), so every
//     type switch below is exhaustive.

package expr

import (
	"fmt"
)

// Kind tags the variant of an expression node.
type Kind uint8

const (
	// KindIdentity tags the multiplicative identity sentinel.
	KindIdentity Kind = iota + 1
	// KindScalar tags a real scalar leaf.
	KindScalar
	// KindMatrix tags a dense matrix leaf.
	KindMatrix
	// KindProduct tags a binary product node.
	KindProduct
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindScalar:
		return "Scalar"
	case KindMatrix:
		return "Matrix"
	case KindProduct:
		return "Product"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Expr is an unevaluated matrix-multiplication expression.
//
// Datatype:
//
//	Expr = Identity | Scalar(value) | Matrix(rows) | Product(left, right)
//
// String returns the stable rendering described in Render.
type Expr interface {
	fmt.Stringer

	// Kind returns the variant tag.
	Kind() Kind

	isExpr()
}

// Compile-time assertions for variant conformance.
var (
	_ Expr = Identity{}
	_ Expr = (*Scalar)(nil)
	_ Expr = (*Matrix)(nil)
	_ Expr = (*Product)(nil)
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilOperand = "expr: Times: nil operand"
	panicNilExpr    = "expr: nil expression"
)

// isNil reports whether e is a nil interface or a typed nil variant pointer.
func isNil(e Expr) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Scalar:
		return v == nil
	case *Matrix:
		return v == nil
	case *Product:
		return v == nil
	default:
		return false
	}
}
