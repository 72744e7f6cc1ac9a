package kaprekar

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/askiada/go-kaprekar/pkg/kaprekar/model"
)

const (
	// Digits is the width of every value handled by the engine.
	Digits = 4
	// Fixpoint is Kaprekar's constant.
	Fixpoint = "6174"
	// Degenerate is the fixpoint reached by repdigits.
	Degenerate = "0000"

	maxValue = 9999
)

type Step = model.Step

// Validate reports whether input is a valid start value: exactly 4 ASCII digits, at least two of them distinct.
func Validate(input string) bool {
	if !isDigits(input) {
		return false
	}

	for i := 1; i < len(input); i++ {
		if input[i] != input[0] {
			return true
		}
	}

	return false
}

func isDigits(input string) bool {
	if len(input) != Digits {
		return false
	}

	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return false
		}
	}

	return true
}

// ComputeStep applies one iteration of the routine to current, which must be 4 ASCII digits.
func ComputeStep(current string, index int) Step {
	ascending := []byte(current)
	slices.Sort(ascending)

	descending := make([]byte, len(ascending))
	for i, digit := range ascending {
		descending[len(ascending)-1-i] = digit
	}

	difference := pad(toInt(descending) - toInt(ascending))

	return Step{
		Index:      index,
		Input:      current,
		Descending: string(descending),
		Ascending:  string(ascending),
		Difference: difference,
		IsFixpoint: difference == Fixpoint,
	}
}

func terminalStep(index int) Step {
	step := ComputeStep(Fixpoint, index)
	step.Terminal = true

	return step
}

func toInt(digits []byte) int {
	value := 0
	for _, digit := range digits {
		value = value*10 + int(digit-'0')
	}

	return value
}

func pad(value int) string {
	return fmt.Sprintf("%0*d", Digits, value)
}

// Pad formats value as a zero-padded 4-digit string.
func Pad(value int) (string, error) {
	if value < 0 || value > maxValue {
		return "", errors.Wrapf(ErrOutOfRange, "got %d", value)
	}

	return pad(value), nil
}
