// SPDX-License-Identifier: MIT

package expr

import "strings"

// Render returns the stable textual form of e:
//
//	Identity      → "I"
//	Scalar(v)     → matrix.FormatValue(v), e.g. "2.0"
//	Matrix(rows)  → "Matrix[[1.0, 2.0]; [3.0, 4.0]]"
//	Product(a, b) → "(" + Render(a) + " * " + Render(b) + ")"
//
// Render is total and deterministic; it equals e.String().
func Render(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)

	return sb.String()
}

// writeExpr appends the rendering of e to sb; products recurse without
// building intermediate strings.
func writeExpr(sb *strings.Builder, e Expr) {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Product:
		sb.WriteByte('(')
		writeExpr(sb, v.left)
		sb.WriteString(" * ")
		writeExpr(sb, v.right)
		sb.WriteByte(')')
	default:
		sb.WriteString(v.String())
	}
}
