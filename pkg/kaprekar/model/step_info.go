package model

// Step is one iteration of Kaprekar's routine.
type Step struct {
	// Input is the zero-padded 4-digit value processed by this step.
	Input string
	// Descending holds the digits of Input in non-increasing order.
	Descending string
	// Ascending holds the digits of Input in non-decreasing order.
	Ascending string
	// Difference is Descending minus Ascending, zero-padded to 4 digits.
	Difference string
	// Index is the position of the step in its sequence, starting at 1.
	Index int
	// IsFixpoint is true when Difference is Kaprekar's constant.
	IsFixpoint bool
	// Terminal marks the display node appended after the fixpoint is reached.
	Terminal bool
}

// SequenceInfo summarises a sequence once the engine stops extending it.
type SequenceInfo struct {
	Start        string
	NaturalSteps int
	Converged    bool
	Degenerate   bool
}
