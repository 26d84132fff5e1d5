// SPDX-License-Identifier: MIT

package console

import "github.com/hashicorp/go-hclog"

// DefaultValue is substituted for blank or unparsable cells and operands.
const DefaultValue = 0.0

// Option configures a Session.
type Option func(*Options)

// Options is the resolved Session configuration.
type Options struct {
	logger       hclog.Logger
	defaultValue float64
}

// WithLogger routes Session diagnostics to l. A nil l is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDefault overrides DefaultValue.
func WithDefault(v float64) Option {
	return func(o *Options) { o.defaultValue = v }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:       hclog.NewNullLogger(),
		defaultValue: DefaultValue,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
