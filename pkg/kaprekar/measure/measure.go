package measure

import (
	"sync"
)

type DefaultMeasure struct {
	mu           *sync.Mutex
	steps        map[string]Metric
	lengths      map[int]int
	nonConverged int
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		mu:      &sync.Mutex{},
		steps:   make(map[string]Metric),
		lengths: make(map[int]int),
	}
}

// AddMetric returns the metric registered under name, creating it when needed.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		res[name] = mt
	}

	return res
}

func (m *DefaultMeasure) AddSequence(naturalSteps int, converged bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !converged {
		m.nonConverged++

		return
	}

	m.lengths[naturalSteps]++
}

// Lengths maps a number of natural steps to the count of converged sequences of that length.
func (m *DefaultMeasure) Lengths() map[int]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[int]int, len(m.lengths))
	for length, count := range m.lengths {
		res[length] = count
	}

	return res
}

func (m *DefaultMeasure) NonConverged() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.nonConverged
}

var _ Measure = (*DefaultMeasure)(nil)
