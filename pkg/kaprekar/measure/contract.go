package measure

import "time"

// Measure collects metrics for every step index and the length of every sequence.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	AddSequence(naturalSteps int, converged bool)
	Lengths() map[int]int
	NonConverged() int
}

// Metric collects the computation durations of one step index.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Total() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
