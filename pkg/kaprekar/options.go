package kaprekar

import (
	"go.uber.org/zap"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

type Option func(e *Engine)

// MaxSteps sets the number of natural steps RunToFixpoint computes before giving up.
func MaxSteps(maxSteps int) Option {
	return func(e *Engine) {
		e.maxSteps = maxSteps
	}
}

// TerminalStep controls whether the display node 6174 -> 6174 is appended once the fixpoint is reached.
func TerminalStep(enabled bool) Option {
	return func(e *Engine) {
		e.terminalStep = enabled
	}
}

// AllowRepdigits accepts start values such as 1111. Those sequences end in the degenerate state.
func AllowRepdigits() Option {
	return func(e *Engine) {
		e.allowRepdigits = true
	}
}

func Logger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Observers registers engine options notified of every step.
func Observers(opts ...model.EngineOption) Option {
	return func(e *Engine) {
		e.opts = append(e.opts, opts...)
	}
}

type SurveyOption func(s *survey)

func SurveyConcurrency(concurrent int) SurveyOption {
	return func(s *survey) {
		s.concurrent = concurrent
	}
}
