package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-kaprekar/internal/render"
	"github.com/askiada/go-kaprekar/pkg/kaprekar"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <value>",
		Short: "Check whether a value is a valid start value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := opts.startValue(args[0])
			valid := kaprekar.Validate(start)

			err := render.NewPrinter(cmd.OutOrStdout()).Validation(start, valid)
			if err != nil {
				return err
			}

			if !valid {
				return errors.Wrapf(kaprekar.ErrInvalidInput, "start %q", start)
			}

			return nil
		},
	}
}
