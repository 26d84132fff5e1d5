// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering and numeric policy.
// This file defines:
//   - documented defaults (constants),
//   - DenseOption (numeric policy of a single Dense),
//   - FormatOption / FormatOptions (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultPrecision is the number of fractional digits Fprint renders.
	DefaultPrecision = 1

	// MaxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	MaxPrecision = 17
)

// Row framing used by Fprint: "[ v v v ]".
const (
	DefaultRowOpen  = "[ "
	DefaultRowClose = "]"
	DefaultValueSep = " "
)

// ---------- Dense construction options ----------

// DenseOption adjusts a Dense at construction time.
type DenseOption func(*Dense)

// WithNoValidateNaNInf disables the finite-only guard in Set, so NaN and ±Inf
// can be stored. The policy travels with Clone.
func WithNoValidateNaNInf() DenseOption {
	return func(m *Dense) { m.validateNaNInf = false }
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, MaxPrecision]"
)

// FormatOption mutates internal render options. Safe to apply repeatedly.
type FormatOption func(*FormatOptions)

// FormatOptions stores the effective render configuration after applying
// FormatOption setters. Fields are unexported; public entry points accept
// ...FormatOption.
type FormatOptions struct {
	precision int    // DefaultPrecision
	rowOpen   string // DefaultRowOpen
	rowClose  string // DefaultRowClose
	sep       string // DefaultValueSep (written after every value)
}

// WithPrecision sets the number of fractional digits.
// Panics when p is outside [0, MaxPrecision].
func WithPrecision(p int) FormatOption {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *FormatOptions) { o.precision = p }
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() FormatOptions {
	return FormatOptions{
		precision: DefaultPrecision,
		rowOpen:   DefaultRowOpen,
		rowClose:  DefaultRowClose,
		sep:       DefaultValueSep,
	}
}

// gatherFormatOptions applies opts over the defaults; last writer wins.
func gatherFormatOptions(opts ...FormatOption) FormatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
