// SPDX-License-Identifier: MIT

package numparse

// Status tags how a Result's Value was obtained.
type Status int

const (
	// Parsed: the input held a finite number; Value is that number.
	Parsed Status = iota
	// Blank: the input was empty after trimming; Value is the default.
	Blank
	// Invalid: the input was non-blank but unusable; Value is the default
	// and Err says why.
	Invalid
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Parsed:
		return "parsed"
	case Blank:
		return "blank"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of Parse.
type Result struct {
	Value  float64 // parsed value, or the default for Blank/Invalid
	Status Status  // which branch produced Value
	Input  string  // trimmed input text
	Err    error   // non-nil only for Invalid; wraps ErrInvalidNumber
}

// OK reports whether Value came from the input rather than the default.
func (r Result) OK() bool { return r.Status == Parsed }

// Defaulted reports whether Value is the substituted default.
func (r Result) Defaulted() bool { return r.Status != Parsed }
