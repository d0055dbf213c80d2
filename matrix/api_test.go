// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/marith/matrix"
	"github.com/stretchr/testify/require"
)

// TestIdentity checks ones on the diagonal and zeros elsewhere.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, id.Size())
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Rows())

	f, err := matrix.Identity[float64](1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, f.Rows())
}

// TestZero checks all entries are zero.
func TestZero(t *testing.T) {
	z, err := matrix.Zero[int](2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, z.Rows())
}

// TestDiagonal checks placement of the given values.
func TestDiagonal(t *testing.T) {
	d, err := matrix.Diagonal(4, -1, 0, 9)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 9}}, d.Rows())

	// The variadic slice is copied, not retained.
	vals := []float64{1.5, 2.5}
	df, err := matrix.Diagonal(vals...)
	require.NoError(t, err)
	vals[0] = 0
	v, _ := df.At(0, 0)
	require.Equal(t, 1.5, v)
}

// TestConstructorsRejectEmpty ensures n <= 0 fails with ErrInvalidDimensions.
func TestConstructorsRejectEmpty(t *testing.T) {
	_, err := matrix.Identity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Zero[int](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Diagonal[int]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestMustNew covers both the success and panic paths.
func TestMustNew(t *testing.T) {
	require.Equal(t, 2, matrix.MustNew([][]int{{1, 2}, {3, 4}}).Size())
	require.Panics(t, func() { matrix.MustNew([][]int{{1, 2, 3}, {4, 5, 6}}) })
}
