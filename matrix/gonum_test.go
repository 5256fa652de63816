// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matexpr/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMatView verifies the zero-copy gonum view.
func TestMatView(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	v := m.Mat()

	r, c := v.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, v.At(1, 2))
	require.Equal(t, 2.0, v.T().At(1, 0))
	require.Panics(t, func() { v.At(2, 0) })

	want := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.True(t, mat.Equal(want, v))
}

// TestToMatIndependence ensures ToMat returns an independent copy.
func TestToMatIndependence(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	d := m.ToMat()
	d.Set(0, 0, 42)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromMat covers snapshots from gonum matrices and rejection paths.
func TestFromMat(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	m, err := matrix.FromMat(src)
	require.NoError(t, err)
	require.True(t, m.IsIdentity())

	src.Set(0, 0, 5) // later mutation of the source
	require.True(t, m.IsIdentity())

	// any mat.Matrix works, including implicit transposes
	tr, err := matrix.FromMat(mat.NewDense(1, 2, []float64{7, 8}).T())
	require.NoError(t, err)
	require.Equal(t, "Matrix[[7.0]; [8.0]]", tr.String())

	_, err = matrix.FromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromMat(&mat.Dense{}) // zero-sized
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.FromMat(mat.NewDense(1, 1, []float64{math.NaN()}), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
