// Package numparse turns one line of console input into a float64 under the
// default-on-failure policy used by the multipliers.
//
// Parse never fails: blank and malformed input resolve to the caller's
// default. NaN and infinity spellings are numbers, and literals beyond
// float64 range become ±Inf. The Result records which case applied, so the
// fallback policy can be tested without any I/O.
//
//	r := numparse.Parse("  3.5 ", 0)
//	r.Value  // 3.5
//	r.Status // numparse.Parsed
package numparse
