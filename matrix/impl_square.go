// SPDX-License-Identifier: MIT

// Package matrix - SquareMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Row/SetRow return errors instead of panicking.
//   - Keep the square invariant closed: nothing after New can change n.
//
// Complexity quicksheet:
//   - New: O(n^2) copy; At/Set: O(1); Row/SetRow: O(n); Clone/Transpose/Equal: O(n^2).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// squareErrorf wraps an error with a uniform SquareMatrix context and callsite indices.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMatrix.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SquareMatrix[int])(nil)

// New builds a SquareMatrix from a grid of rows, copying the input.
//
// Implementation:
//   - Stage 1: validateRows (empty → ragged → non-square).
//   - Stage 2: copy rows into a fresh flat buffer.
//
// Errors:
//   - *ShapeError (errors.Is ErrShape) with Kind ShapeEmpty, ShapeRagged,
//     ShapeTooManyRows or ShapeTooFewRows.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func New[T Number](rows [][]T) (*SquareMatrix[T], error) {
	n, err := validateRows(rows)
	if err != nil {
		return nil, err
	}

	m := newSquare[T](n)
	for i, row := range rows {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// newSquare allocates a zero n×n matrix. Callers guarantee n >= 1.
func newSquare[T Number](n int) *SquareMatrix[T] {
	return &SquareMatrix[T]{n: n, data: make([]T, n*n)}
}

// Size returns n, the row and column count.
func (m *SquareMatrix[T]) Size() int {
	return m.n
}

// At returns the (i, j) entry or ErrOutOfRange.
func (m *SquareMatrix[T]) At(i, j int) (T, error) {
	if err := validateCell(i, j, m.n); err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, i, j, err)
	}

	return m.data[i*m.n+j], nil
}

// Set replaces the (i, j) entry in place. The shape is unaffected.
func (m *SquareMatrix[T]) Set(i, j int, v T) error {
	if err := validateCell(i, j, m.n); err != nil {
		return squareErrorf(ctxSet, i, j, err)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Row returns a copy of row i. Mutating the result does not affect m.
func (m *SquareMatrix[T]) Row(i int) ([]T, error) {
	if err := validateIndex(i, m.n); err != nil {
		return nil, squareErrorf(ctxRow, i, 0, err)
	}
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// SetRow replaces row i in place with a copy of row.
// Unlike plain index assignment, the length is checked so the matrix stays
// square: len(row) != n yields ErrSizeMismatch and leaves m untouched.
func (m *SquareMatrix[T]) SetRow(i int, row []T) error {
	if err := validateIndex(i, m.n); err != nil {
		return squareErrorf(ctxSetRow, i, 0, err)
	}
	if err := validateRowLen(len(row), m.n); err != nil {
		return squareErrorf(ctxSetRow, i, 0, err)
	}
	copy(m.data[i*m.n:(i+1)*m.n], row)

	return nil
}

// Rows returns a deep copy of the entry grid.
func (m *SquareMatrix[T]) Rows() [][]T {
	out := make([][]T, m.n)
	for i := range out {
		out[i] = make([]T, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Clone returns a deep copy of m.
func (m *SquareMatrix[T]) Clone() *SquareMatrix[T] {
	c := newSquare[T](m.n)
	copy(c.data, m.data)

	return c
}

// Equal reports whether other has the same size and identical entries.
// A nil other is never equal.
func (m *SquareMatrix[T]) Equal(other *SquareMatrix[T]) bool {
	if other == nil || m.n != other.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Transpose returns a fresh matrix with entries (j, i).
func (m *SquareMatrix[T]) Transpose() *SquareMatrix[T] {
	n := m.n
	t := newSquare[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.data[j*n+i] = m.data[i*n+j]
		}
	}

	return t
}

// String renders the grid as nested bracketed lists, e.g. "[[1, 2], [3, 4]]".
// The output is deterministic for a given matrix.
func (m *SquareMatrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.n+j])
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
