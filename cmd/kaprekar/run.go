package main

import (
	"github.com/spf13/cobra"

	"github.com/askiada/go-kaprekar/internal/render"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <value>",
		Short: "Run the routine from a value until it reaches 6174",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine()
			if err != nil {
				return err
			}

			seq, runErr := eng.RunToFixpoint(opts.startValue(args[0]))
			if seq.Len() > 0 {
				err = render.NewPrinter(cmd.OutOrStdout()).Sequence(seq)
				if err != nil {
					return err
				}
			}

			return runErr
		},
	}
}
