// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/matexpr/matrix"

// hashPrime folds child hashes: h = hashPrime*h + x.
const hashPrime = 31

// Equal reports structural, variant-sensitive equality.
//
//   - Identity equals Identity only.
//   - Scalars compare with IEEE == (NaN != NaN, +0 == -0).
//   - Matrices compare by shape and element-wise IEEE ==.
//   - Products compare child-by-child; no associativity, commutativity or
//     identity absorption is applied, so Equal(Times(I, x), x) is false.
func Equal(a, b Expr) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch v := a.(type) {
	case *Scalar:
		return v.value == b.(*Scalar).value
	case *Matrix:
		return matrix.Equal(v.payload, b.(*Matrix).payload)
	case *Product:
		w := b.(*Product)
		return Equal(v.left, w.left) && Equal(v.right, w.right)
	default: // Identity
		return true
	}
}

// Hash returns a hash consistent with Equal: Equal(a, b) implies
// Hash(a) == Hash(b). The variant tag is mixed in so that different variants
// rarely collide.
func Hash(e Expr) uint64 {
	switch v := e.(type) {
	case nil:
		panic(panicNilExpr)
	case *Scalar:
		return seed(KindScalar) + matrix.HashValue(v.value)
	case *Matrix:
		return seed(KindMatrix) + v.payload.Hash()
	case *Product:
		h := seed(KindProduct)
		h = hashPrime*h + Hash(v.left)
		h = hashPrime*h + Hash(v.right)
		return h
	default: // Identity
		return seed(KindIdentity)
	}
}

// seed spreads the variant tag over the high bits.
func seed(k Kind) uint64 { return uint64(k) << 56 }
