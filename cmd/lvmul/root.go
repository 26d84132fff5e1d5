// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmul/console"
)

const defaultLogLevel = "off"

// rootOptions is shared by every subcommand.
type rootOptions struct {
	logLevel string
	def      float64
	logger   hclog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	cmd := &cobra.Command{
		Use:   "lvmul",
		Short: "Multiply numbers and matrices read from the console",
		Long: `lvmul reads one value per line and prints products.

Blank or invalid values are replaced by the default (0, see --default) and
processing continues.
Diagnostics go to stderr and are disabled unless --log-level is set.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := hclog.LevelFromString(opts.logLevel)
			if level == hclog.NoLevel {
				return fmt.Errorf("invalid --log-level %q (want trace, debug, info, warn, error or off)", opts.logLevel)
			}
			opts.logger = hclog.New(&hclog.LoggerOptions{
				Name:   "lvmul",
				Level:  level,
				Output: cmd.ErrOrStderr(),
			})

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Diagnostic log level (trace, debug, info, warn, error, off)")
	cmd.PersistentFlags().Float64Var(&opts.def, "default", console.DefaultValue, "Value substituted for blank or invalid input")

	cmd.AddCommand(newScalarCmd(opts))
	cmd.AddCommand(newMatrixCmd(opts))

	return cmd
}

// session wires the command's streams, the configured logger and the
// fallback value.
func (o *rootOptions) session(cmd *cobra.Command) *console.Session {
	return console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
		console.WithLogger(o.logger),
		console.WithDefault(o.def),
	)
}
