// SPDX-License-Identifier: MIT

// Package matrix provides SquareMatrix, a validated n×n matrix value type.
//
// The package offers:
//
//   - Validated construction (New) that rejects empty, ragged and non-square input.
//   - Arithmetic (Add, Sub, Mul, Scale) that always allocates a fresh result
//     and never mutates its operands.
//   - Row-major iteration through a one-shot Iterator cursor, or the
//     range-over-func sequences All and Cells.
//   - The determinant family: Det (first-row Laplace expansion), Minor,
//     Cofactor and CofactorMatrix, plus an optionally parallel Determinant.
//   - Free constructors Identity, Zero and Diagonal.
//
// Entries are generic over Number (signed integers and floats). Integer
// matrices give exact determinants, which is what most callers want for
// teaching-sized inputs.
//
// Determinants are computed by cofactor expansion in O(n!) time. This is
// intended for small matrices; no LU or Bareiss elimination is provided.
//
// Errors are package-level sentinels (ErrShape, ErrSizeMismatch, ...) wrapped
// by the typed diagnostics *ShapeError and *SizeMismatchError. Match with
// errors.Is for the condition and errors.As for the offending dimensions.
package matrix
