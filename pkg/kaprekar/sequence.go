package kaprekar

import "github.com/askiada/go-kaprekar/pkg/kaprekar/model"

type State string

const (
	StateEmpty      State = "empty"
	StateInProgress State = "in_progress"
	StateConverged  State = "converged"
	StateDegenerate State = "degenerate"
)

// Sequence is the ordered list of steps computed from one start value.
//
// A Sequence is never modified once returned. The zero value is an empty sequence.
type Sequence struct {
	state State
	steps []Step
}

// State returns the position of the sequence in its lifecycle.
func (s Sequence) State() State {
	if s.state == "" {
		return StateEmpty
	}

	return s.state
}

// Start returns the value the sequence was started from.
func (s Sequence) Start() string {
	if len(s.steps) == 0 {
		return ""
	}

	return s.steps[0].Input
}

// Steps returns a copy of the steps, terminal display step included.
func (s Sequence) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)

	return steps
}

func (s Sequence) Len() int {
	return len(s.steps)
}

// Last returns the most recent step.
func (s Sequence) Last() (Step, bool) {
	if len(s.steps) == 0 {
		return Step{}, false
	}

	return s.steps[len(s.steps)-1], true
}

// Converged reports whether the sequence reached 6174.
func (s Sequence) Converged() bool {
	return s.state == StateConverged
}

// NaturalSteps counts the computed steps, the terminal display step is excluded.
func (s Sequence) NaturalSteps() int {
	total := 0
	for _, step := range s.steps {
		if !step.Terminal {
			total++
		}
	}

	return total
}

// ConvergedAt returns the index of the natural step whose difference is 6174, or 0.
func (s Sequence) ConvergedAt() int {
	for _, step := range s.steps {
		if step.IsFixpoint && !step.Terminal {
			return step.Index
		}
	}

	return 0
}

func (s Sequence) Info() model.SequenceInfo {
	return model.SequenceInfo{
		Start:        s.Start(),
		NaturalSteps: s.NaturalSteps(),
		Converged:    s.Converged(),
		Degenerate:   s.state == StateDegenerate,
	}
}

func (s Sequence) isTerminal() bool {
	return s.state == StateConverged || s.state == StateDegenerate
}

// extend returns a new sequence holding the steps of s followed by steps.
func (s Sequence) extend(state State, steps ...Step) Sequence {
	all := make([]Step, 0, len(s.steps)+len(steps))
	all = append(all, s.steps...)
	all = append(all, steps...)

	return Sequence{state: state, steps: all}
}
