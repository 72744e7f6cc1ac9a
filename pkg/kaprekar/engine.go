package kaprekar

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

// DefaultMaxSteps bounds RunToFixpoint. Every valid start value converges within this many steps.
const DefaultMaxSteps = 7

// Engine computes Kaprekar sequences.
type Engine struct {
	logger         *zap.Logger
	opts           []model.EngineOption
	maxSteps       int
	terminalStep   bool
	allowRepdigits bool
}

// New creates a new engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		logger:       zap.NewNop(),
		maxSteps:     DefaultMaxSteps,
		terminalStep: true,
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.maxSteps < 1 {
		return nil, errors.Wrapf(ErrMaxSteps, "got %d", eng.maxSteps)
	}

	for _, opt := range eng.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply engine option")
		}
	}

	return eng, nil
}

func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

func (e *Engine) accepts(input string) bool {
	if e.allowRepdigits {
		return isDigits(input)
	}

	return Validate(input)
}

// Start validates start and returns the sequence holding its first step.
func (e *Engine) Start(start string) (Sequence, error) {
	if !e.accepts(start) {
		return Sequence{}, errors.Wrapf(ErrInvalidInput, "start %q", start)
	}

	return e.advance(Sequence{}, start, 1)
}

// StepOnce returns a new sequence one step longer than seq.
// It fails with ErrInvalidState when seq is empty, converged or degenerate.
func (e *Engine) StepOnce(seq Sequence) (Sequence, error) {
	if seq.State() == StateEmpty {
		return seq, errors.Wrap(ErrInvalidState, "sequence is empty")
	}

	if seq.isTerminal() {
		return seq, errors.Wrapf(ErrInvalidState, "sequence from %s is %s", seq.Start(), seq.State())
	}

	last, _ := seq.Last()

	return e.advance(seq, last.Difference, last.Index+1)
}

// RunToFixpoint computes the sequence from start until 6174 is reached or the step limit is exhausted.
// The partial sequence is returned along with ErrNotConverged or ErrDegenerate when 6174 was not reached.
func (e *Engine) RunToFixpoint(start string) (Sequence, error) {
	seq, err := e.Start(start)
	if err != nil {
		return seq, err
	}

	for seq.State() == StateInProgress && seq.NaturalSteps() < e.maxSteps {
		seq, err = e.StepOnce(seq)
		if err != nil {
			return seq, err
		}
	}

	switch seq.State() {
	case StateConverged:
		return seq, nil
	case StateDegenerate:
		return seq, errors.Wrapf(ErrDegenerate, "start %q", start)
	}

	e.logger.Warn("step limit exhausted", zap.String("start", start), zap.Int("max_steps", e.maxSteps))

	err = e.onSequenceEnd(seq.Info())
	if err != nil {
		return seq, err
	}

	return seq, errors.Wrapf(ErrNotConverged, "start %q after %d steps", start, e.maxSteps)
}

// Finish runs the finish hook of every engine option.
func (e *Engine) Finish() error {
	for _, opt := range e.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish engine option")
		}
	}

	return nil
}

func (e *Engine) advance(seq Sequence, current string, index int) (Sequence, error) {
	startFn := time.Now()
	step := ComputeStep(current, index)
	endFn := time.Since(startFn)

	var parent *Step
	if last, ok := seq.Last(); ok {
		parent = &last
	}

	err := e.onStep(parent, &step, endFn)
	if err != nil {
		return seq, err
	}

	e.logger.Debug("step",
		zap.Int("index", step.Index),
		zap.String("input", step.Input),
		zap.String("descending", step.Descending),
		zap.String("ascending", step.Ascending),
		zap.String("difference", step.Difference),
	)

	switch {
	case step.IsFixpoint:
		next := seq.extend(StateConverged, step)

		if e.terminalStep {
			terminal := terminalStep(step.Index + 1)

			err = e.onStep(&step, &terminal, 0)
			if err != nil {
				return seq, err
			}

			next = next.extend(StateConverged, terminal)
		}

		e.logger.Info("reached fixpoint", zap.String("start", next.Start()), zap.Int("steps", step.Index))

		return next, e.onSequenceEnd(next.Info())
	case step.Difference == Degenerate:
		next := seq.extend(StateDegenerate, step)

		e.logger.Warn("reached degenerate fixpoint", zap.String("start", next.Start()))

		return next, e.onSequenceEnd(next.Info())
	default:
		return seq.extend(StateInProgress, step), nil
	}
}

func (e *Engine) onStep(parent, step *Step, computationDuration time.Duration) error {
	for _, opt := range e.opts {
		err := opt.OnStep(parent, step, computationDuration)
		if err != nil {
			return errors.Wrapf(err, "unable to run step hook on %s", step.Input)
		}
	}

	return nil
}

func (e *Engine) onSequenceEnd(info model.SequenceInfo) error {
	for _, opt := range e.opts {
		err := opt.OnSequenceEnd(info)
		if err != nil {
			return errors.Wrapf(err, "unable to run sequence end hook on %s", info.Start)
		}
	}

	return nil
}

// RunToFixpoint runs start on an engine with default options and the given step limit.
func RunToFixpoint(start string, maxSteps int) (Sequence, error) {
	eng, err := New(MaxSteps(maxSteps))
	if err != nil {
		return Sequence{}, err
	}

	return eng.RunToFixpoint(start)
}

// StepOnce extends seq on an engine with default options.
func StepOnce(seq Sequence) (Sequence, error) {
	eng, err := New()
	if err != nil {
		return seq, err
	}

	return eng.StepOnce(seq)
}
