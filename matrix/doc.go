// Package matrix offers a small dense linear-algebra core for the console
// multipliers.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over rectangular float64 grids, and Dense,
//     its row-major implementation with bounds-checked At/Set.
//   - ValidateMulCompatible / CanMul, the shape compatibility check
//     (A.Cols == B.Rows) that gates multiplication.
//   - Mul, the textbook triple-loop product with sequential accumulation.
//   - Fprint / Format, the bracketed one-decimal console layout.
//
// All errors are sentinels from errors.go, wrapped with an operation tag;
// match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
