package model

import "time"

// EngineOption defines the interface for options observing the engine.
//
// During a survey the hooks are called from several goroutines, implementations must be safe for concurrent use.
type EngineOption interface {
	// New initialises the engine option.
	New() error
	// OnStep runs everytime the engine computes a step. parent is nil for the first step of a sequence.
	OnStep(parent, step *Step, computationDuration time.Duration) error
	// OnSequenceEnd runs when a sequence reaches a terminal state or its step limit.
	OnSequenceEnd(info SequenceInfo) error
	// Finish runs when the engine is finished.
	Finish() error
}
