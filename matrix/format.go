// SPDX-License-Identifier: MIT
// Package matrix: console rendering.
//
// Layout per row (defaults): "[ " + each value as %.1f followed by " " + "]".
// Infinities render as inf / -inf and NaN as NaN.
//
//	[ 58.0 64.0 ]
//	[ 139.0 154.0 ]

package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const opFprint = "Fprint"

// Fprint writes m to w, one line per row, values fixed-point with the
// configured precision. It never mutates m.
//
// Errors:
//   - ErrNilMatrix (nil m), any error from m.At or w.
//
// Complexity:
//   - Time O(r*c).
func Fprint(w io.Writer, m Matrix, opts ...FormatOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	o := gatherFormatOptions(opts...)

	var (
		b    strings.Builder
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		b.Reset()
		b.WriteString(o.rowOpen)
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opFprint, err)
			}
			b.WriteString(formatValue(v, o.precision))
			b.WriteString(o.sep)
		}
		b.WriteString(o.rowClose)
		b.WriteByte('\n')
		if _, err = io.WriteString(w, b.String()); err != nil {
			return matrixErrorf(opFprint, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}

// formatValue renders one cell; non-finite values print as inf, -inf, NaN.
func formatValue(v float64, prec int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}

// Format renders m exactly as Fprint would and returns the text.
func Format(m Matrix, opts ...FormatOption) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}
