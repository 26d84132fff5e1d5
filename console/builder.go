// SPDX-License-Identifier: MIT

package console

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvmul/matrix"
	"github.com/katalvlaran/lvmul/numparse"
)

// Builder transcript. %.1f slots take the Session default.
const (
	headerCreating = "Creating a %d×%d matrix:\n"
	headerHint     = "Enter values or press Enter for default values (%.1f):\n"
	promptCell     = "Enter value for position [%d,%d]: "
	noticeCell     = "Invalid input! Using default value %.1f.\n"
)

// BuildReport summarizes how a matrix was populated.
type BuildReport struct {
	Rows, Cols int
	Parsed     int // cells set from input
	Blank      int // cells left at the default because the line was empty

	invalid *multierror.Error // one entry per cell that fell back after a parse failure
}

// Invalid returns the number of cells that fell back after a parse failure.
func (r *BuildReport) Invalid() int {
	if r.invalid == nil {
		return 0
	}

	return len(r.invalid.Errors)
}

// Err returns the recovered parse failures as one error, or nil if every
// non-blank line parsed. These failures never abort a build; Err exists for
// diagnostics.
func (r *BuildReport) Err() error { return r.invalid.ErrorOrNil() }

// BuildMatrix prompts for every cell of a rows×cols matrix in row-major
// order and returns the populated matrix.
//
// Implementation:
//   - Stage 1: allocate a zero-filled Dense (fails with matrix.ErrInvalidDimensions).
//   - Stage 2: print the header, then per cell: prompt, read, parse.
//   - Stage 3: blank → keep default; invalid → default + notice; parsed → Set.
//
// Errors:
//   - matrix.ErrInvalidDimensions, ErrInputUnreadable, ErrOutputUnwritable.
//
// Complexity: O(rows*cols) reads.
func (s *Session) BuildMatrix(rows, cols int) (*matrix.Dense, *BuildReport, error) {
	m, err := matrix.NewDense(rows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, fmt.Errorf("BuildMatrix: %w", err)
	}
	rep := &BuildReport{Rows: rows, Cols: cols}

	// A non-zero default must be visible even in cells that are never answered.
	if s.def != 0 {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if err = m.Set(i, j, s.def); err != nil {
					return nil, nil, fmt.Errorf("BuildMatrix: %w", err)
				}
			}
		}
	}

	s.Printf(headerCreating, rows, cols)
	s.Printf(headerHint, s.def)

	var (
		i, j int
		line string
		r    numparse.Result
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if line, err = s.Prompt(fmt.Sprintf(promptCell, i, j)); err != nil {
				return nil, nil, fmt.Errorf("BuildMatrix: cell [%d,%d]: %w", i, j, err)
			}
			r = numparse.Parse(line, s.def)
			switch r.Status {
			case numparse.Blank:
				rep.Blank++
				continue
			case numparse.Invalid:
				s.Printf(noticeCell, s.def)
				rep.invalid = multierror.Append(rep.invalid, fmt.Errorf("cell [%d,%d]: %w", i, j, r.Err))
				s.log.Trace("cell fell back to default", "row", i, "col", j, "input", r.Input)
			case numparse.Parsed:
				rep.Parsed++
			}
			if err = m.Set(i, j, r.Value); err != nil {
				return nil, nil, fmt.Errorf("BuildMatrix: %w", err)
			}
		}
	}
	if err = s.Err(); err != nil {
		return nil, nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	s.log.Debug("matrix built", "rows", rows, "cols", cols,
		"parsed", rep.Parsed, "blank", rep.Blank, "invalid", rep.Invalid())

	return m, rep, nil
}
