package passcheck

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for values that are not password text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyDictionary is returned when a custom dictionary has no entries.
	ErrEmptyDictionary = errors.New("dictionary has no entries")
	// ErrGenerateLength is returned for generator lengths outside the supported range.
	ErrGenerateLength = errors.New("unsupported password length")
	// ErrGenerateExhausted is returned when no candidate passed evaluation.
	ErrGenerateExhausted = errors.New("no strong candidate generated")
)

// InputError describes why a value was rejected. Reason never carries the
// rejected value itself.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
