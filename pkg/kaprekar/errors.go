package kaprekar

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidInput = errors.New("input must be 4 digits with at least two distinct digits")
	ErrInvalidState = errors.New("sequence cannot be extended")
	ErrNotConverged = errors.New("sequence did not reach 6174")
	ErrDegenerate   = errors.New("sequence collapsed to 0000")
	ErrMaxSteps     = errors.New("max steps must be greater than 0")
	ErrOutOfRange   = errors.New("value must be between 0 and 9999")
)
