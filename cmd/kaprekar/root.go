package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/go-kaprekar/internal/config"
	"github.com/askiada/go-kaprekar/internal/logging"
	"github.com/askiada/go-kaprekar/pkg/kaprekar"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

type rootOptions struct {
	cfg    *config.Config
	logger *zap.Logger

	configPath     string
	logLevel       string
	maxSteps       int
	noTerminal     bool
	allowRepdigits bool
	pad            bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "kaprekar",
		Short: "Explore Kaprekar's routine on 4-digit numbers",
		Long: `Arrange the digits of a 4-digit number in descending and ascending order and subtract.
Repeat with the difference: every number with at least two distinct digits reaches 6174,
Kaprekar's constant, within seven steps.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.IntVar(&opts.maxSteps, "max-steps", kaprekar.DefaultMaxSteps, "Steps computed before giving up")
	flags.BoolVar(&opts.noTerminal, "no-terminal", false, "Do not append the 6174 display step once converged")
	flags.BoolVar(&opts.allowRepdigits, "allow-repdigits", false, "Accept repdigits such as 1111 (debug)")
	flags.BoolVar(&opts.pad, "pad", false, "Zero-pad start values shorter than 4 digits")

	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newStepCmd(opts))
	root.AddCommand(newSurveyCmd(opts))

	return root
}

// load reads the configuration file and applies the flags set on the command line on top of it.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg := config.Default()

	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	if flags.Changed("max-steps") {
		cfg.MaxSteps = o.maxSteps
	}

	if flags.Changed("no-terminal") {
		cfg.TerminalStep = !o.noTerminal
	}

	if flags.Changed("allow-repdigits") {
		cfg.AllowRepdigits = o.allowRepdigits
	}

	err := cfg.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "unable to initialise logger")
	}

	o.cfg = cfg
	o.logger = logger

	return nil
}

func (o *rootOptions) engine(observers ...model.EngineOption) (*kaprekar.Engine, error) {
	engineOpts := o.cfg.EngineOptions(o.logger)
	if len(observers) > 0 {
		engineOpts = append(engineOpts, kaprekar.Observers(observers...))
	}

	eng, err := kaprekar.New(engineOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create engine")
	}

	return eng, nil
}

// startValue zero-pads input when --pad is set and input is a number below 10000.
func (o *rootOptions) startValue(input string) string {
	if !o.pad || len(input) >= kaprekar.Digits {
		return input
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return input
	}

	padded, err := kaprekar.Pad(value)
	if err != nil {
		return input
	}

	return padded
}
