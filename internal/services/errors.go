package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped with a detail message for every validation failure.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
