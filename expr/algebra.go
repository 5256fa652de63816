// SPDX-License-Identifier: MIT

// Package expr - structural transformations.
//
// Every operation here is a total function defined by case on the variant and
// recurring into Product children. Inputs are never mutated; each call walks
// the whole tree once and allocates fresh Product nodes (no memoization).
//
// Complexity quicksheet (n = node count):
//   - IsIdentity: O(n + matrix entries), no allocation.
//   - Scalars / Matrices / Optimize: O(n) time, O(#products) new nodes.

package expr

// IsIdentity reports whether e syntactically denotes the multiplicative identity.
//
//	Identity      → true
//	Scalar(v)     → v == 1
//	Matrix(rows)  → square Kronecker delta under exact comparison
//	Product(a, b) → IsIdentity(a) && IsIdentity(b)
//
// No arithmetic is performed on children: Times(Make(2), Make(0.5)) is not
// the identity.
func IsIdentity(e Expr) bool {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Scalar:
		return v.value == 1
	case *Matrix:
		return v.payload.IsIdentity()
	case *Product:
		return IsIdentity(v.left) && IsIdentity(v.right)
	default: // Identity
		return true
	}
}

// Scalars returns e with every matrix leaf replaced by I. The result keeps
// e's Product skeleton and its scalar leaves (same nodes, same order), so it
// denotes the product of all scalars in e.
func Scalars(e Expr) Expr {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Scalar:
		return v
	case *Matrix:
		return I
	case *Product:
		return Times(Scalars(v.left), Scalars(v.right))
	default: // Identity
		return I
	}
}

// Matrices returns e with every scalar leaf replaced by I. The result keeps
// e's Product skeleton and its matrix leaves in their original order, so it
// denotes the ordered product of all matrices in e.
func Matrices(e Expr) Expr {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Scalar:
		return I
	case *Matrix:
		return v
	case *Product:
		return Times(Matrices(v.left), Matrices(v.right))
	default: // Identity
		return I
	}
}

// Optimize factors e into the canonical form Times(Scalars(e), Matrices(e)).
// Leaves are returned unchanged. A Product is always re-wrapped, even when it
// is already in canonical form, so Optimize is not idempotent on products.
// No constant folding or identity elimination is performed.
func Optimize(e Expr) Expr {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Product:
		return Times(Scalars(v), Matrices(v))
	default: // leaves
		return v
	}
}
