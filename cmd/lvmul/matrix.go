// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmul/matmul"
	"github.com/katalvlaran/lvmul/matrix"
)

func newMatrixCmd(opts *rootOptions) *cobra.Command {
	cfg := matmul.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Multiply two matrices entered cell by cell",
		Long: `Prompt for every cell of matrix A, then of matrix B, and print A × B.

A shape mismatch (columns of A != rows of B) is reported and the program
ends normally without a result.

Example:
  lvmul matrix --rows-a 2 --cols-a 2 --rows-b 2 --cols-b 1`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := matmul.Run(opts.session(cmd), cfg)
			if errors.Is(err, matrix.ErrDimensionMismatch) {
				// Already explained on stdout; not a process failure.
				opts.logger.Debug("multiplication skipped", "error", err)
				return nil
			}

			return err
		},
	}

	cmd.Flags().IntVar(&cfg.RowsA, "rows-a", matmul.DefaultRowsA, "Rows of matrix A")
	cmd.Flags().IntVar(&cfg.ColsA, "cols-a", matmul.DefaultColsA, "Columns of matrix A")
	cmd.Flags().IntVar(&cfg.RowsB, "rows-b", matmul.DefaultRowsB, "Rows of matrix B")
	cmd.Flags().IntVar(&cfg.ColsB, "cols-b", matmul.DefaultColsB, "Columns of matrix B")
	cmd.Flags().IntVar(&cfg.Precision, "precision", matrix.DefaultPrecision, "Fractional digits when printing matrices")

	return cmd
}
