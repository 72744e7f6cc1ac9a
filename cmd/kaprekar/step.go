package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-kaprekar/internal/render"
)

var errCount = errors.New("count must be greater than 0")

func newStepCmd(opts *rootOptions) *cobra.Command {
	count := 1

	cmd := &cobra.Command{
		Use:   "step <value>",
		Short: "Compute a given number of steps from a value, one at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.Wrapf(errCount, "got %d", count)
			}

			eng, err := opts.engine()
			if err != nil {
				return err
			}

			seq, stepErr := eng.Start(opts.startValue(args[0]))
			for i := 1; i < count && stepErr == nil; i++ {
				seq, stepErr = eng.StepOnce(seq)
			}

			if seq.Len() > 0 {
				err = render.NewPrinter(cmd.OutOrStdout()).Sequence(seq)
				if err != nil {
					return err
				}
			}

			return stepErr
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of steps to compute")

	return cmd
}
