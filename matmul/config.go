// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"

	"github.com/katalvlaran/lvmul/matrix"
)

// Default operand shapes: a 2×3 matrix times a 3×2 matrix.
const (
	DefaultRowsA = 2
	DefaultColsA = 3
	DefaultRowsB = 3
	DefaultColsB = 2
)

// Config fixes the operand shapes and the rendering precision of one Run.
type Config struct {
	RowsA, ColsA int
	RowsB, ColsB int
	Precision    int // fractional digits in printed matrices
}

// DefaultConfig returns the 2×3 by 3×2 setup with one-decimal output.
func DefaultConfig() Config {
	return Config{
		RowsA:     DefaultRowsA,
		ColsA:     DefaultColsA,
		RowsB:     DefaultRowsB,
		ColsB:     DefaultColsB,
		Precision: matrix.DefaultPrecision,
	}
}

// Validate rejects non-positive dimensions and out-of-range precision.
// Shape compatibility is NOT checked here; Run reports it after both
// matrices have been entered.
func (c Config) Validate() error {
	dims := []struct {
		name string
		v    int
	}{
		{"rows of A", c.RowsA}, {"columns of A", c.ColsA},
		{"rows of B", c.RowsB}, {"columns of B", c.ColsB},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return fmt.Errorf("matmul: %s = %d: %w", d.name, d.v, matrix.ErrInvalidDimensions)
		}
	}
	if c.Precision < 0 || c.Precision > matrix.MaxPrecision {
		return fmt.Errorf("matmul: precision %d outside [0, %d]: %w", c.Precision, matrix.MaxPrecision, ErrInvalidConfig)
	}

	return nil
}
