// Package expr is a symbolic algebra of matrix-multiplication expressions.
//
// What & Why:
//
//	An Expr is an unevaluated product tree. Leaves are the identity sentinel I,
//	real scalars (Make) and dense real matrices (MakeMatrix); interior nodes are
//	binary products (Times). Scalars commute with matrices while matrices do
//	not commute with each other, so any expression can be factored into
//	"product of all scalars" × "ordered product of all matrices". That
//	factoring (Scalars, Matrices, Optimize) lets a consumer evaluate the scalar
//	coefficient once and the matrix chain once.
//
// Surface:
//
//	I, Make(v), MakeMatrix(rows), MustMatrix(rows), FromMat(m), Times(a, b)
//	IsIdentity(e), Scalars(e), Matrices(e), Optimize(e)
//	Render(e) / e.String(), Equal(a, b), Hash(e), Leaves(e), Factors(e)
//
// Guarantees:
//
//   - Immutability: nodes never change after construction; MakeMatrix copies its
//     input and Matrix.Array returns a copy. Subtrees may be shared freely,
//     including across goroutines.
//   - No construction-time simplification: Times(I, x) stays a Product.
//   - No dimension checking: Times accepts any operands; shape compatibility
//     is the evaluator's concern.
//   - Exact numerics: equality and IsIdentity use IEEE == (NaN != NaN).
//
// Example:
//
//	x := expr.MustMatrix([][]float64{{1, 2}, {3, 4}})
//	e := expr.Times(expr.Make(2), x)
//	fmt.Println(expr.Optimize(e))
//	// ((2.0 * I) * (I * Matrix[[1.0, 2.0]; [3.0, 4.0]]))
//
// Complexity:
//
//	Scalars, Matrices and Optimize walk the tree once and allocate O(n) nodes;
//	results are never memoized.
package expr
