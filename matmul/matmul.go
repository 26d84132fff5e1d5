// SPDX-License-Identifier: MIT

// Package matmul runs the interactive matrix multiplication program:
// build A, build B, check shapes, multiply, print.
package matmul

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmul/console"
	"github.com/katalvlaran/lvmul/matrix"
)

// ErrInvalidConfig marks a Config that fails Validate for reasons other than
// dimensions.
var ErrInvalidConfig = errors.New("matmul: invalid config")

// Transcript lines.
const (
	banner       = "===== Matrix Multiplication Program ====="
	headerA      = "\nFirst Matrix (A):"
	headerB      = "\nSecond Matrix (B):"
	mismatchHead = "Error: Cannot multiply these matrices!"
	mismatchWhy  = "Number of columns in first matrix must equal number of rows in second matrix."
	calculating  = "\nCalculating A × B..."
	headerResult = "\nResult Matrix (A × B):"
)

// Run executes the program over s.
//
// Implementation:
//   - Stage 1: validate cfg.
//   - Stage 2: build and print A, then B.
//   - Stage 3: shape check; on mismatch print the explanation and stop.
//   - Stage 4: multiply and print the product.
//
// Returns the product. On a shape mismatch it returns a nil matrix and an
// error matching matrix.ErrDimensionMismatch; the explanation has already
// been printed, so callers treat this as a normal end of the program.
//
// Errors:
//   - matrix.ErrInvalidDimensions / ErrInvalidConfig (bad cfg, nothing printed),
//   - matrix.ErrDimensionMismatch (soft stop),
//   - console.ErrInputUnreadable / console.ErrOutputUnwritable (fatal).
func Run(s *console.Session, cfg Config) (matrix.Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := s.Logger().Named("matmul")
	fopt := matrix.WithPrecision(cfg.Precision)

	s.Println(banner)

	s.Println(headerA)
	a, err := buildAndShow(s, cfg.RowsA, cfg.ColsA, fopt)
	if err != nil {
		return nil, fmt.Errorf("matmul: A: %w", err)
	}

	s.Println(headerB)
	b, err := buildAndShow(s, cfg.RowsB, cfg.ColsB, fopt)
	if err != nil {
		return nil, fmt.Errorf("matmul: B: %w", err)
	}

	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		s.Println(mismatchHead)
		s.Println(mismatchWhy)
		log.Debug("shape mismatch", "a_cols", a.Cols(), "b_rows", b.Rows())
		if werr := s.Err(); werr != nil {
			return nil, fmt.Errorf("matmul: %w", werr)
		}

		return nil, fmt.Errorf("matmul: %w", err)
	}

	s.Println(calculating)
	res, err := matrix.Mul(a, b)
	if err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}
	log.Debug("multiplied", "rows", res.Rows(), "cols", res.Cols(), "inner", a.Cols())

	s.Println(headerResult)
	if err = show(s, res, fopt); err != nil {
		return nil, fmt.Errorf("matmul: result: %w", err)
	}

	return res, nil
}

func buildAndShow(s *console.Session, rows, cols int, fopt matrix.FormatOption) (*matrix.Dense, error) {
	m, _, err := s.BuildMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = show(s, m, fopt); err != nil {
		return nil, err
	}

	return m, nil
}

func show(s *console.Session, m matrix.Matrix, fopt matrix.FormatOption) error {
	text, err := matrix.Format(m, fopt)
	if err != nil {
		return err
	}
	s.Printf("%s", text)

	return s.Err()
}
