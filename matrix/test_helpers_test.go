// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep entries small integers so determinants stay exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/marith/matrix"
	"github.com/stretchr/testify/require"
)

// seed fixes every pseudo-random fixture in this package.
const seed = 20240611

// mustNew builds a matrix from rows or fails the test.
func mustNew[T matrix.Number](t *testing.T, rows [][]T) *matrix.SquareMatrix[T] {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(t *testing.T, n int) *matrix.SquareMatrix[int] {
	t.Helper()
	m, err := matrix.Identity[int](n)
	require.NoError(t, err)

	return m
}

// randomInts returns an n×n grid with entries in [-9, 9].
func randomInts(rng *rand.Rand, n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(19) - 9
		}
	}

	return rows
}

// randomMatrix wraps randomInts into a SquareMatrix or fails the test.
func randomMatrix(t *testing.T, rng *rand.Rand, n int) *matrix.SquareMatrix[int] {
	t.Helper()

	return mustNew(t, randomInts(rng, n))
}

// requireSameMatrix compares two matrices with a readable failure message.
func requireSameMatrix[T matrix.Number](t *testing.T, want, got *matrix.SquareMatrix[T]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s\n got %s", want, got)
}
