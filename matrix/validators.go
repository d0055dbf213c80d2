// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep constructors and kernels minimal by delegating guards here.
//  - Return sentinel or typed errors (no op tags) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//  - validateRows is O(rows); every other check is O(1).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRows checks that rows describes a non-empty square grid and returns n.
//
// Order of checks: empty → ragged (first offender) → too many / too few rows.
// Returns a *ShapeError (unwraps to ErrShape) on failure.
// Complexity: O(rows).
func validateRows[T Number](rows [][]T) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, &ShapeError{Kind: ShapeEmpty, Rows: len(rows)}
	}

	// Every row must match the first one; report the first offender.
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return 0, &ShapeError{Kind: ShapeRagged, Rows: len(rows), Cols: cols, Row: i, RowLen: len(row)}
		}
	}

	switch {
	case len(rows) > cols:
		return 0, &ShapeError{Kind: ShapeTooManyRows, Rows: len(rows), Cols: cols}
	case len(rows) < cols:
		return 0, &ShapeError{Kind: ShapeTooFewRows, Rows: len(rows), Cols: cols}
	}

	return cols, nil
}

// validateNotNil ensures the matrix pointer is non-nil.
func validateNotNil[T Number](m *SquareMatrix[T]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameSize is the composite NotNil(a) → NotNil(b) → equal Size check
// used by every binary kernel. op names the operation in the typed error.
func validateSameSize[T Number](op string, a, b *SquareMatrix[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return &SizeMismatchError{Op: op, Left: a.n, Right: b.n}
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("index %d not in [0,%d)", i, n), ErrOutOfRange)
	}

	return nil
}

// validateCell ensures (i, j) addresses an entry of an n×n matrix.
func validateCell(i, j, n int) error {
	if err := validateIndex(i, n); err != nil {
		return err
	}

	return validateIndex(j, n)
}

// validateRowLen ensures a replacement row keeps the matrix square.
func validateRowLen(got, n int) error {
	if got != n {
		return validatorErrorf(fmt.Sprintf("row length %d, want %d", got, n), ErrSizeMismatch)
	}

	return nil
}
