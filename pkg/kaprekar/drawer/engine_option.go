package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/measure"
	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

type engineDrawer struct {
	Drawer
	m measure.Measure
}

func (ed *engineDrawer) New() error {
	err := ed.AddValue(fixpoint)
	if err != nil {
		return errors.Wrap(err, "unable to add fixpoint to drawer")
	}

	return nil
}

func (ed *engineDrawer) OnStep(_, step *model.Step, _ time.Duration) error {
	return ed.AddTransition(step.Input, step.Difference)
}

func (ed *engineDrawer) OnSequenceEnd(_ model.SequenceInfo) error {
	return nil
}

func (ed *engineDrawer) Finish() error {
	if ed.m != nil {
		err := ed.AddMeasure(ed.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := ed.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw transition graph")
	}

	return nil
}

// EngineDrawer returns an engine option drawing every observed transition. measure may be nil.
func EngineDrawer(drawer Drawer, measure measure.Measure) model.EngineOption {
	return &engineDrawer{drawer, measure}
}
