// SPDX-License-Identifier: MIT
// Package matrix: free constructors.
//
// Purpose:
//   - Provide Diagonal as the single canonical builder for diagonal matrices.
//   - Express Identity and Zero as Diagonal over constant inputs (no loop duplication).

package matrix

// Diagonal returns the n×n matrix with values on the main diagonal and zeros
// elsewhere, where n = len(values).
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Diagonal[T Number](values ...T) (*SquareMatrix[T], error) {
	n := len(values)
	if n == 0 {
		return nil, matrixErrorf(opDiagonal, ErrInvalidDimensions)
	}

	m := newSquare[T](n)
	for i, v := range values {
		m.data[i*n+i] = v
	}

	return m, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrInvalidDimensions when n <= 0.
func Identity[T Number](n int) (*SquareMatrix[T], error) {
	return constantDiagonal[T](opIdentity, n, 1)
}

// Zero returns the n×n zero matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func Zero[T Number](n int) (*SquareMatrix[T], error) {
	return constantDiagonal[T](opZero, n, 0)
}

// constantDiagonal builds Diagonal(v, v, ..., v) with n copies of v.
func constantDiagonal[T Number](op string, n int, v T) (*SquareMatrix[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(op, ErrInvalidDimensions)
	}
	values := make([]T, n)
	for i := range values {
		values[i] = v
	}

	return Diagonal(values...)
}

// MustNew is like New but panics on error. Intended for literals in tests and
// package-level variables where the shape is known to be valid.
func MustNew[T Number](rows [][]T) *SquareMatrix[T] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}
