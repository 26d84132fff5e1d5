// Package lvmul is a pair of console multipliers built on a small dense
// matrix core.
//
// 🚀 What is in here?
//
//	• numparse/ - one line of text → float64, with a tagged default-on-failure result
//	• matrix/   - Dense row-major storage, shape checks, Mul, bracketed printing
//	• console/  - prompt-then-read sessions and the cell-by-cell matrix builder
//	• scalar/   - the two-number multiplier
//	• matmul/   - the interactive A × B program
//	• cmd/lvmul - the cobra CLI exposing both programs
//
// ✨ Guarantees
//
//   - Bad input never aborts a run: blank or invalid values become 0.
//   - A × B is only computed when A.Cols == B.Rows; otherwise the mismatch is
//     explained and no result is produced.
//   - Pure Go kernels, deterministic loop orders, no goroutines.
//
// Quick example:
//
//	printf '3\n4\n' | lvmul scalar
//	# 3 × 4 = 12
package lvmul
