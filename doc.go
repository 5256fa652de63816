// Package matexpr is a symbolic algebra for matrix-multiplication expressions
// and their scalar/matrix factoring.
//
// What is matexpr?
//
//	A small, immutable, dependency-light library that brings together:
//		• expr/   : the expression tree (I, scalars, matrices, products),
//		            IsIdentity, Scalars, Matrices, Optimize, Render, Equal, Hash
//		• matrix/ : the immutable dense payload behind matrix leaves, exact
//		            identity/equality tests, stable number rendering, gonum interop
//
// Quick example:
//
//	    a·(X·b)  ──Optimize──▶  (a·(I·b)) · (I·(X·I))
//	    └ scalars hoisted left, matrices kept in order on the right
//
// Nothing is evaluated: the factored form is handed to whatever multiplies
// matrices. Dimension checking is that consumer's job.
//
//	go get github.com/katalvlaran/matexpr
package matexpr
