// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/marith/matrix"
)

// benchMatrix builds a deterministic n×n integer matrix for benchmarks.
func benchMatrix(b *testing.B, n int) *matrix.SquareMatrix[int] {
	b.Helper()
	m, err := matrix.New(randomInts(rand.New(rand.NewSource(seed)), n))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchMatrix(b, n), benchMatrix(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Mul(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	for _, n := range []int{4, 6, 8} {
		m := benchMatrix(b, n)
		b.Run(fmt.Sprintf("sequential/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Determinant(m, matrix.WithSequential())
			}
		})
		b.Run(fmt.Sprintf("parallel/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Determinant(m, matrix.WithParallelThreshold(2))
			}
		})
	}
}
