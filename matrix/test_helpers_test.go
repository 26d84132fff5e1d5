// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvmul/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
//   - Use hide{X} in tests to force the non-*Dense (fallback) path in Mul.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from row literals or fails the test.
func MustFrom(t require.TestingT, rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// IdentityDense RETURNS an n×n identity or fails the test.
func IdentityDense(t require.TestingT, n int) *matrix.Dense {
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// CompareExact asserts m equals want cell by cell (shape included).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols at row %d", i)
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// drawRows DRAWS an r×c grid of finite, moderately sized values.
// Magnitudes stay small enough that no product can overflow.
func drawRows(t *rapid.T, r, c int, label string) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = rapid.SliceOfN(rapid.Float64Range(-1e3, 1e3), c, c).Draw(t, label)
	}

	return out
}

// mustDense ALLOCATES for benchmarks.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand FILLS d with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
	}
}
