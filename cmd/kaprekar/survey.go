package main

import (
	"github.com/spf13/cobra"

	"github.com/askiada/go-kaprekar/internal/render"
	"github.com/askiada/go-kaprekar/pkg/kaprekar"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/drawer"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

type surveyOptions struct {
	dotFile     string
	concurrency int
	measure     bool
}

func newSurveyCmd(opts *rootOptions) *cobra.Command {
	surveyOpts := &surveyOptions{}

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run every 4-digit value and report how many steps each one needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSurvey(cmd, opts, surveyOpts)
		},
	}

	cmd.Flags().StringVar(&surveyOpts.dotFile, "dot", "", "Write the transition graph to this DOT file")
	cmd.Flags().IntVar(&surveyOpts.concurrency, "concurrency", 0, "Number of workers, defaults to the configuration")
	cmd.Flags().BoolVar(&surveyOpts.measure, "measure", false, "Report the average duration of each step")

	return cmd
}

func runSurvey(cmd *cobra.Command, opts *rootOptions, surveyOpts *surveyOptions) error {
	dotFile := opts.cfg.DOTFile
	if surveyOpts.dotFile != "" {
		dotFile = surveyOpts.dotFile
	}

	concurrency := opts.cfg.Concurrency
	if surveyOpts.concurrency > 0 {
		concurrency = surveyOpts.concurrency
	}

	withMeasure := opts.cfg.Measure || surveyOpts.measure

	var (
		msr       measure.Measure
		observers []model.EngineOption
	)

	if withMeasure || dotFile != "" {
		msr = measure.NewDefaultMeasure()
		observers = append(observers, measure.EngineMeasure(msr))
	}

	if dotFile != "" {
		observers = append(observers, drawer.EngineDrawer(drawer.NewDOTDrawer(dotFile), msr))
	}

	eng, err := opts.engine(observers...)
	if err != nil {
		return err
	}

	report, err := eng.Survey(cmd.Context(), kaprekar.SurveyConcurrency(concurrency))
	if err != nil {
		return err
	}

	err = eng.Finish()
	if err != nil {
		return err
	}

	prt := render.NewPrinter(cmd.OutOrStdout())

	err = prt.Survey(report)
	if err != nil {
		return err
	}

	if withMeasure {
		return prt.Measure(msr)
	}

	return nil
}
