// SPDX-License-Identifier: MIT

// Package matrix - determinant family: Det, Minor, Cofactor, CofactorMatrix.
//
// Purpose:
//   - Compute determinants by Laplace (cofactor) expansion along row 0:
//     det(M) = Σ_j (-1)^j · M[0,j] · det(Minor(M, 0, j)), with det of a 1×1 = its entry.
//   - Expose the minor and cofactor primitives the expansion is built on.
//
// Complexity:
//   - Det: O(n!) time, O(n^2) live minors on the recursion stack.
//   - Minor: O(n^2). Cofactor: O((n-1)!). CofactorMatrix: O(n^2 · (n-1)!).
//
// Notes:
//   - The 1×1 base case short-circuits before a minor would be taken; the
//     internal minor helper relies on that and is never called with n == 1.
//   - Zero entries on the expansion row are skipped; they contribute nothing.

package matrix

import "golang.org/x/sync/errgroup"

// signOf returns (-1)^k.
func signOf[T Number](k int) T {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Det returns the determinant of m by first-row Laplace expansion.
// It never fails: every constructed matrix has n >= 1.
func (m *SquareMatrix[T]) Det() T {
	return det(m)
}

// det is the sequential recursive kernel behind Det and Determinant.
func det[T Number](m *SquareMatrix[T]) T {
	if m.n == 1 {
		return m.data[0]
	}

	var sum T
	for j := 0; j < m.n; j++ {
		if m.data[j] == 0 {
			continue
		}
		sum += signOf[T](j) * m.data[j] * det(minor(m, 0, j))
	}

	return sum
}

// Determinant computes det(m) like Det, optionally fanning the n first-row
// terms out over a bounded errgroup when n reaches the parallel threshold.
// Each worker reads m only; the partial terms are summed in index order.
//
// Errors:
//   - ErrNilMatrix for a nil m.
func Determinant[T Number](m *SquareMatrix[T], opts ...Option) (T, error) {
	var zero T
	if err := validateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	o := gatherOptions(opts...)
	if !o.fanOut(m.n) {
		return det(m), nil
	}

	terms := make([]T, m.n)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for j := 0; j < m.n; j++ {
		if m.data[j] == 0 {
			continue
		}
		g.Go(func() error {
			terms[j] = signOf[T](j) * m.data[j] * det(minor(m, 0, j))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	var sum T
	for _, t := range terms {
		sum += t
	}

	return sum, nil
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row i and column j.
//
// Errors:
//   - ErrMinorUndefined when m is 1×1.
//   - ErrOutOfRange when i or j is outside [0, n).
func (m *SquareMatrix[T]) Minor(i, j int) (*SquareMatrix[T], error) {
	if m.n == 1 {
		return nil, matrixErrorf(opMinor, ErrMinorUndefined)
	}
	if err := validateCell(i, j, m.n); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minor(m, i, j), nil
}

// minor deletes row skipRow and column skipCol. Requires n >= 2 and valid indices.
func minor[T Number](m *SquareMatrix[T], skipRow, skipCol int) *SquareMatrix[T] {
	n := m.n
	out := newSquare[T](n - 1)
	k := 0
	for r := 0; r < n; r++ {
		if r == skipRow {
			continue
		}
		for c := 0; c < n; c++ {
			if c == skipCol {
				continue
			}
			out.data[k] = m.data[r*n+c]
			k++
		}
	}

	return out
}

// Cofactor returns (-1)^(i+j) · det(Minor(i, j)). Errors as for Minor.
func (m *SquareMatrix[T]) Cofactor(i, j int) (T, error) {
	mn, err := m.Minor(i, j)
	if err != nil {
		var zero T
		return zero, matrixErrorf(opCofactor, err)
	}

	return signOf[T](i+j) * det(mn), nil
}

// CofactorMatrix returns C with C[i,j] = Cofactor(i, j).
// For a 1×1 matrix the single cofactor is defined as 1 (the empty minor has
// determinant 1), which keeps M · Cᵀ = det(M) · I true for every n.
func (m *SquareMatrix[T]) CofactorMatrix() *SquareMatrix[T] {
	n := m.n
	c := newSquare[T](n)
	if n == 1 {
		c.data[0] = 1
		return c
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.data[i*n+j] = signOf[T](i+j) * det(minor(m, i, j))
		}
	}

	return c
}
