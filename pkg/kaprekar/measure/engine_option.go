package measure

import (
	"strconv"
	"time"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

// TotalMetricName is the metric holding the duration between the engine creation and its end.
const TotalMetricName = "total"

type engineMeasure struct {
	Measure
	startTime time.Time
}

// StepMetricName returns the name of the metric collecting the steps at index.
func StepMetricName(index int) string {
	return "step " + strconv.Itoa(index)
}

func (em *engineMeasure) New() error {
	em.AddMetric(TotalMetricName)
	em.startTime = time.Now()

	return nil
}

func (em *engineMeasure) OnStep(_, step *model.Step, computationDuration time.Duration) error {
	if step.Terminal {
		return nil
	}

	em.AddMetric(StepMetricName(step.Index)).AddDuration(computationDuration)

	return nil
}

func (em *engineMeasure) OnSequenceEnd(info model.SequenceInfo) error {
	em.AddSequence(info.NaturalSteps, info.Converged)

	return nil
}

func (em *engineMeasure) Finish() error {
	em.GetMetric(TotalMetricName).SetTotalDuration(time.Since(em.startTime))

	return nil
}

// EngineMeasure returns an engine option recording step durations and sequence lengths into measure.
func EngineMeasure(measure Measure) model.EngineOption {
	return &engineMeasure{Measure: measure}
}
