// SPDX-License-Identifier: MIT

package matrix

import "iter"

// Iterator is a one-shot, row-major cursor over the entries of a matrix.
//
// The cursor holds a read-only reference to the matrix and its own (row, col)
// position. col starts one before the first column so that the first advance
// lands on (0, 0). Once exhausted, Next keeps returning (zero, false); an
// Iterator is never rewound. Call Iter again for a fresh pass.
//
// Entries replaced via Set between two Next calls are observed by later calls;
// the shape can not change, so the cursor never runs out of bounds.
type Iterator[T Number] struct {
	m    *SquareMatrix[T]
	row  int
	col  int
	done bool
}

// Iter returns a new cursor positioned before entry (0, 0).
func (m *SquareMatrix[T]) Iter() *Iterator[T] {
	return &Iterator[T]{m: m, row: 0, col: -1}
}

// advance moves the cursor one entry forward, reporting false at the end.
func (it *Iterator[T]) advance() bool {
	if it.done {
		return false
	}
	n := it.m.n
	if it.col == n-1 {
		if it.row == n-1 {
			it.done = true
			return false
		}
		it.col = 0
		it.row++
		return true
	}
	it.col++

	return true
}

// Next returns the next entry in row-major order.
// The boolean is false once all n*n entries have been produced.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.advance() {
		var zero T
		return zero, false
	}

	return it.m.data[it.row*it.m.n+it.col], true
}

// Cell returns the position of the entry most recently returned by Next.
// Before the first Next it reports (0, -1).
func (it *Iterator[T]) Cell() Cell {
	return Cell{Row: it.row, Col: it.col}
}

// Done reports whether the cursor is exhausted.
func (it *Iterator[T]) Done() bool {
	return it.done
}

// All returns the entries of m in row-major order as a range-over-func sequence.
// Each range statement drives its own Iterator.
func (m *SquareMatrix[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := m.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells is like All but also yields the position of every entry.
func (m *SquareMatrix[T]) Cells() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		it := m.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(it.Cell(), v) {
				return
			}
		}
	}
}
