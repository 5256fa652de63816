// SPDX-License-Identifier: MIT

package expr

// Leaves returns the leaves of e in left-to-right order. Product nodes are
// skipped; shared subtrees are visited once per occurrence.
// Complexity: O(n) time, O(depth) stack.
func Leaves(e Expr) []Expr {
	var out []Expr
	walkLeaves(e, func(leaf Expr) { out = append(out, leaf) })

	return out
}

// walkLeaves calls visit on every leaf of e, left to right.
func walkLeaves(e Expr, visit func(Expr)) {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Product:
		walkLeaves(v.left, visit)
		walkLeaves(v.right, visit)
	default:
		visit(v)
	}
}

// Factors splits the leaves of e into its scalar leaves and its matrix leaves,
// each in left-to-right order. Identity leaves are dropped. A consumer can
// multiply the scalars into one coefficient and evaluate the matrix chain in
// the returned order.
func Factors(e Expr) (scalars []*Scalar, matrices []*Matrix) {
	walkLeaves(e, func(leaf Expr) {
		switch v := leaf.(type) {
		case *Scalar:
			scalars = append(scalars, v)
		case *Matrix:
			matrices = append(matrices, v)
		}
	})

	return scalars, matrices
}
