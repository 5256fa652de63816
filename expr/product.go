// SPDX-License-Identifier: MIT

package expr

import "strings"

// Product is the binary product left × right. Children are shared, not
// copied; the same subtree may appear under many products.
//
// No dimension compatibility is enforced: Identity has no fixed shape and
// checking operand shapes is left to whoever evaluates the expression.
type Product struct {
	left, right Expr
}

// Times returns the product a × b in the given order.
// No simplification happens here: Times(I, x) and Times(Make(1), x) are
// kept verbatim. Panics if either operand is nil.
// Complexity: O(1).
func Times(a, b Expr) *Product {
	if isNil(a) || isNil(b) {
		panic(panicNilOperand)
	}

	return &Product{left: a, right: b}
}

// Left returns the first operand.
func (p *Product) Left() Expr { return p.left }

// Right returns the second operand.
func (p *Product) Right() Expr { return p.right }

// Kind returns KindProduct.
func (*Product) Kind() Kind { return KindProduct }

// String renders "(" + left + " * " + right + ")".
func (p *Product) String() string {
	var sb strings.Builder
	writeExpr(&sb, p)

	return sb.String()
}

func (*Product) isExpr() {}
