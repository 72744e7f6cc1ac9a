// Package config loads the YAML configuration of the kaprekar command line.
package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-kaprekar/pkg/kaprekar"
)

var (
	ErrMaxSteps    = errors.New("max_steps must be greater than 0")
	ErrConcurrency = errors.New("concurrency must be greater than 0")
	ErrLogLevel    = errors.New("log_level must be one of debug, info, warn, error")
)

// Config holds the settings of the engine and of the command line.
type Config struct {
	LogLevel       string `yaml:"log_level"`
	DOTFile        string `yaml:"dot_file,omitempty"`
	MaxSteps       int    `yaml:"max_steps"`
	Concurrency    int    `yaml:"concurrency"`
	TerminalStep   bool   `yaml:"terminal_step"`
	AllowRepdigits bool   `yaml:"allow_repdigits"`
	Measure        bool   `yaml:"measure"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:     "warn",
		MaxSteps:     kaprekar.DefaultMaxSteps,
		Concurrency:  4,
		TerminalStep: true,
	}
}

// Load reads the YAML file at path on top of the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config %s", path)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxSteps < 1 {
		return errors.Wrapf(ErrMaxSteps, "got %d", c.MaxSteps)
	}

	if c.Concurrency < 1 {
		return errors.Wrapf(ErrConcurrency, "got %d", c.Concurrency)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrLogLevel, "got %q", c.LogLevel)
	}

	return nil
}

// EngineOptions maps the configuration to engine options.
func (c *Config) EngineOptions(logger *zap.Logger) []kaprekar.Option {
	opts := []kaprekar.Option{
		kaprekar.MaxSteps(c.MaxSteps),
		kaprekar.TerminalStep(c.TerminalStep),
		kaprekar.Logger(logger),
	}

	if c.AllowRepdigits {
		opts = append(opts, kaprekar.AllowRepdigits())
	}

	return opts
}
