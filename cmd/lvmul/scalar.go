// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmul/scalar"
)

func newScalarCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scalar",
		Short: "Multiply two numbers",
		Long: `Prompt for two numbers, one per line, and print their product.

Example:
  printf '3\n4\n' | lvmul scalar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scalar.Run(opts.session(cmd))
			return err
		},
	}
}
