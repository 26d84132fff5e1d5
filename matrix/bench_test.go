// Package matrix_test provides benchmarks for the multiplication kernel,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmul/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul_Fallback(b *testing.B) {
	b.ReportAllocs()
	A := mustDense(b, 64, 64)
	B := mustDense(b, 64, 64)
	fillDenseRand(b, A, 7)
	fillDenseRand(b, B, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Mul(hide{A}, hide{B})
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
