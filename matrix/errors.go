// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed shape diagnostics.
// All operations MUST return these sentinels (directly or wrapped) and tests
// MUST check them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Typed errors
// (ShapeError, SizeMismatchError) unwrap to their sentinel so callers may use
// errors.Is for the condition and errors.As for the dimensions.

var (
	// ErrShape is returned when construction input is empty, ragged or non-square.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrSizeMismatch indicates that the operands of a binary operation differ in size.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that a requested size is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil *SquareMatrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMinorUndefined is returned when a minor is requested from a 1×1 matrix.
	ErrMinorUndefined = errors.New("matrix: minor of a 1x1 matrix is undefined")
)

// ShapeKind classifies why construction input was rejected.
type ShapeKind int

const (
	// ShapeEmpty: no rows, or a first row of length zero.
	ShapeEmpty ShapeKind = iota
	// ShapeRagged: some row differs in length from the first row.
	ShapeRagged
	// ShapeTooManyRows: more rows than columns.
	ShapeTooManyRows
	// ShapeTooFewRows: fewer rows than columns.
	ShapeTooFewRows
)

// String returns a short human-readable label for k.
func (k ShapeKind) String() string {
	switch k {
	case ShapeEmpty:
		return "empty"
	case ShapeRagged:
		return "ragged rows"
	case ShapeTooManyRows:
		return "more rows than columns"
	case ShapeTooFewRows:
		return "fewer rows than columns"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeError reports rejected construction input together with the offending
// dimensions. Rows and Cols describe the input as seen (Cols is the length of
// the first row). For ShapeRagged, Row and RowLen name the first bad row.
type ShapeError struct {
	Kind   ShapeKind
	Rows   int
	Cols   int
	Row    int
	RowLen int
}

// Error implements error.
func (e *ShapeError) Error() string {
	switch e.Kind {
	case ShapeRagged:
		return fmt.Sprintf("%s: %s: row %d has length %d, want %d",
			ErrShape.Error(), e.Kind, e.Row, e.RowLen, e.Cols)
	case ShapeEmpty:
		return fmt.Sprintf("%s: %s", ErrShape.Error(), e.Kind)
	default:
		return fmt.Sprintf("%s: %s: got %d x %d, only square matrices are supported",
			ErrShape.Error(), e.Kind, e.Rows, e.Cols)
	}
}

// Unwrap exposes ErrShape for errors.Is.
func (e *ShapeError) Unwrap() error { return ErrShape }

// SizeMismatchError reports a binary operation over matrices of different sizes.
type SizeMismatchError struct {
	Op    string
	Left  int
	Right int
}

// Error implements error.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot %s square matrices of different sizes (%d and %d)",
		ErrSizeMismatch.Error(), e.Op, e.Left, e.Right)
}

// Unwrap exposes ErrSizeMismatch for errors.Is.
func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
