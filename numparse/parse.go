// SPDX-License-Identifier: MIT

package numparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse trims s and interprets it as a float64.
//
// Implementation:
//   - Stage 1: trim surrounding whitespace (including the line terminator).
//   - Stage 2: empty → Blank with def.
//   - Stage 3: strconv.ParseFloat; syntax error → Invalid with def.
//
// NaN, inf and infinity spellings are numbers. A literal beyond float64
// range (1e400) parses to ±Inf rather than failing.
//
// Complexity: O(len(s)).
func Parse(s string, def float64) Result {
	in := strings.TrimSpace(s)
	if in == "" {
		return Result{Value: def, Status: Blank, Input: in}
	}

	v, err := strconv.ParseFloat(in, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Result{Value: def, Status: Invalid, Input: in, Err: fmt.Errorf("%q: %w", in, ErrInvalidNumber)}
	}

	return Result{Value: v, Status: Parsed, Input: in}
}

// Format renders v in plain positional notation with the fewest digits that
// round-trip: 12, 0.5, -3.25. No exponent is ever used. Infinities print as
// inf / -inf, NaN as NaN.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
