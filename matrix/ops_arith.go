// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over SquareMatrix:
// element-wise addition and subtraction, matrix multiplication and scalar
// scaling. All kernels validate first, allocate one fresh result and never
// mutate their operands.
//
// Notes:
//   - Size checks live in validators.go; kernels wrap failures with matrixErrorf.
//   - Loop orders are fixed, so results are reproducible bit-for-bit.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
	opDiagonal    = "Diagonal"
	opIdentity    = "Identity"
	opZero        = "Zero"
)

// Verbs used inside SizeMismatchError messages.
const (
	verbAdd      = "add"
	verbSubtract = "subtract"
	verbMultiply = "multiply"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub so validation and allocation live in one place.
func addSub[T Number](a, b *SquareMatrix[T], sign T, opTag, verb string) (*SquareMatrix[T], error) {
	if err := validateSameSize(verb, a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newSquare[T](a.n)
	for k := range res.data { // flat 0..n*n-1
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - *SizeMismatchError (errors.Is ErrSizeMismatch) when a.Size() != b.Size().
//
// Complexity: O(n^2).
func Add[T Number](a, b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return addSub(a, b, 1, opAdd, verbAdd)
}

// Sub returns the element-wise difference a - b. Errors as for Add.
func Sub[T Number](a, b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return addSub(a, b, -1, opSub, verbSubtract)
}

// Mul returns the matrix product a × b:
//
//	out[i,j] = Σ_k a[i,k] · b[k,j]
//
// The i→k→j loop walks both operands row-major. Errors as for Add.
// Complexity: O(n^3).
func Mul[T Number](a, b *SquareMatrix[T]) (*SquareMatrix[T], error) {
	if err := validateSameSize(verbMultiply, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := newSquare[T](n)
	var i, j, k int
	for i = 0; i < n; i++ {
		rowOut := res.data[i*n : (i+1)*n]
		for k = 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue // contributes nothing
			}
			rowB := b.data[k*n : (k+1)*n]
			for j = 0; j < n; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return res, nil
}

// Scale returns c·m. It never fails.
func Scale[T Number](m *SquareMatrix[T], c T) *SquareMatrix[T] {
	res := newSquare[T](m.n)
	for k, v := range m.data {
		res.data[k] = c * v
	}

	return res
}

// Add is the method form of Add(m, other).
func (m *SquareMatrix[T]) Add(other *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return Add(m, other)
}

// Sub is the method form of Sub(m, other).
func (m *SquareMatrix[T]) Sub(other *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return Sub(m, other)
}

// Mul is the method form of Mul(m, other).
func (m *SquareMatrix[T]) Mul(other *SquareMatrix[T]) (*SquareMatrix[T], error) {
	return Mul(m, other)
}

// Scale is the method form of Scale(m, c).
func (m *SquareMatrix[T]) Scale(c T) *SquareMatrix[T] {
	return Scale(m, c)
}
