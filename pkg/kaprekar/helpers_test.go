package kaprekar_test

import (
	"sync"
	"time"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

type recordedStep struct {
	parent *model.Step
	step   model.Step
}

type recorder struct {
	mu       sync.Mutex
	steps    []recordedStep
	ends     []model.SequenceInfo
	stepErr  error
	started  bool
	finished bool
}

func (r *recorder) New() error {
	r.started = true

	return nil
}

func (r *recorder) OnStep(parent, step *model.Step, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stepErr != nil {
		return r.stepErr
	}

	r.steps = append(r.steps, recordedStep{parent: parent, step: *step})

	return nil
}

func (r *recorder) OnSequenceEnd(info model.SequenceInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ends = append(r.ends, info)

	return nil
}

func (r *recorder) Finish() error {
	r.finished = true

	return nil
}

var _ model.EngineOption = (*recorder)(nil)
