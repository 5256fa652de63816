// SPDX-License-Identifier: MIT
// Package expr_test contains shared fixtures.
//
// Purpose:
//   • Fixed operands used by the end-to-end scenarios (X, Y, a, b).
//   • A small random tree generator for law-style tests (deterministic by seed).

package expr_test

import (
	"math/rand"

	"github.com/katalvlaran/matexpr/expr"
)

const (
	xRender = "Matrix[[1.0, 2.0]; [3.0, 4.0]]"
	yRender = "Matrix[[5.0, 6.0]; [7.0, 8.0]]"
)

// fixtures returns fresh X, Y, a, b.
func fixtures() (x, y *expr.Matrix, a, b *expr.Scalar) {
	x = expr.MustMatrix([][]float64{{1, 2}, {3, 4}})
	y = expr.MustMatrix([][]float64{{5, 6}, {7, 8}})
	a = expr.Make(2.0)
	b = expr.Make(3.0)

	return x, y, a, b
}

// randomExpr builds a tree of the given depth from a seeded source.
// Leaves are drawn uniformly from {I, scalar, matrix}.
func randomExpr(rng *rand.Rand, depth int) expr.Expr {
	if depth == 0 || rng.Intn(4) == 0 {
		switch rng.Intn(3) {
		case 0:
			return expr.I
		case 1:
			return expr.Make(float64(rng.Intn(7) - 3))
		default:
			r, c := 1+rng.Intn(3), 1+rng.Intn(3)
			rows := make([][]float64, r)
			for i := range rows {
				rows[i] = make([]float64, c)
				for j := range rows[i] {
					rows[i][j] = float64(rng.Intn(5))
				}
			}
			return expr.MustMatrix(rows)
		}
	}

	return expr.Times(randomExpr(rng, depth-1), randomExpr(rng, depth-1))
}

// randomExprs returns n deterministic trees.
func randomExprs(seed int64, n, depth int) []expr.Expr {
	rng := rand.New(rand.NewSource(seed))
	out := make([]expr.Expr, n)
	for i := range out {
		out[i] = randomExpr(rng, depth)
	}

	return out
}

// skeleton renders e with every leaf replaced by "_".
func skeleton(e expr.Expr) string {
	if p, ok := e.(*expr.Product); ok {
		return "(" + skeleton(p.Left()) + " * " + skeleton(p.Right()) + ")"
	}

	return "_"
}
