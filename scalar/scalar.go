// SPDX-License-Identifier: MIT

// Package scalar implements the two-number console multiplier.
package scalar

import (
	"fmt"

	"github.com/katalvlaran/lvmul/console"
	"github.com/katalvlaran/lvmul/numparse"
)

// Transcript lines.
const (
	banner       = "===== Basic Multiplication Calculator ====="
	promptFirst  = "Enter the first number:"
	promptSecond = "Enter the second number:"
	noticeFormat = "Invalid input! Using default value %s.\n"
	resultHeader = "\nCalculation Result:"
)

// Calculation is the outcome of one Run.
type Calculation struct {
	A, B    float64
	Product float64
}

// String renders "a × b = product" with numparse.Format for every operand.
func (c Calculation) String() string {
	return fmt.Sprintf("%s × %s = %s", numparse.Format(c.A), numparse.Format(c.B), numparse.Format(c.Product))
}

// Multiply returns a*b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Run asks for two numbers, multiplies them and prints the result.
// Unlike matrix cells, a blank operand is reported with the same notice as
// malformed text; both fall back to the Session default.
//
// Errors: console.ErrInputUnreadable, console.ErrOutputUnwritable.
func Run(s *console.Session) (Calculation, error) {
	s.Println(banner)

	a, err := readOperand(s, promptFirst)
	if err != nil {
		return Calculation{}, fmt.Errorf("scalar: first operand: %w", err)
	}
	b, err := readOperand(s, promptSecond)
	if err != nil {
		return Calculation{}, fmt.Errorf("scalar: second operand: %w", err)
	}

	c := Calculation{A: a, B: b, Product: Multiply(a, b)}
	s.Println(resultHeader)
	s.Println(c.String())
	if err = s.Err(); err != nil {
		return Calculation{}, fmt.Errorf("scalar: %w", err)
	}
	s.Logger().Debug("scalar product", "a", a, "b", b, "product", c.Product)

	return c, nil
}

func readOperand(s *console.Session, prompt string) (float64, error) {
	s.Println(prompt)
	r, err := s.ReadNumber()
	if err != nil {
		return 0, err
	}
	if r.Defaulted() {
		s.Printf(noticeFormat, numparse.Format(r.Value))
		s.Logger().Trace("operand fell back to default", "status", r.Status, "input", r.Input)
	}

	return r.Value, nil
}
