// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the constructors, kernels and iterators.
// This file intentionally contains ONLY type declarations; behavior lives in
// impl_square.go, ops_arith.go, impl_determinant.go and iterator.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of entry types a SquareMatrix may hold.
// Unsigned integers are excluded: Laplace expansion needs negation.
type Number interface {
	constraints.Signed | constraints.Float
}

// SquareMatrix is an n×n matrix with n >= 1.
//   - n is fixed at construction; the shape never changes afterwards.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// The matrix owns data exclusively: constructors copy their input and
// accessors hand out copies, so no two matrices share storage.
type SquareMatrix[T Number] struct {
	n    int // side length (>= 1)
	data []T // contiguous row-major storage (len == n*n)
}

// Cell addresses one entry of a matrix.
type Cell struct {
	Row int
	Col int
}
