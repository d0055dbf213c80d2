// Package marith is a small square-matrix arithmetic library.
//
// What is marith?
//
//	A pure-Go, validated n×n matrix value type with:
//		• Checked construction: empty, ragged and non-square grids are rejected
//		• Arithmetic: Add, Sub, Mul, Scale (fresh results, operands untouched)
//		• Row-major iteration: one-shot Iterator, range-over-func All/Cells
//		• Determinants by Laplace expansion, with Minor/Cofactor/CofactorMatrix
//		• Free constructors: Identity, Zero, Diagonal
//
// Everything lives in one subpackage:
//
//	matrix/   SquareMatrix, its kernels, iterators and constructors
//
// Quick example:
//
//	m := matrix.MustNew([][]int{{1, 2}, {3, 4}})
//	m.Det() // -2
//
//	go get github.com/katalvlaran/marith/matrix
package marith
