package errdefs

import (
	"errors"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrDecode     = errors.New("decode failed")

	ErrExtraction = errors.New("extraction failed")
	ErrGeneration = errors.New("generation failed")

	ErrNoContent = errors.New("no content extracted")
	ErrEncoding  = errors.New("encoding failed")

	ErrConfig = errors.New("invalid configuration")
)

// Validation wraps a user facing message so it can be surfaced verbatim.
func Validation(message string) error {
	return &validationError{message}
}

type validationError struct {
	message string
}

func (e *validationError) Error() string {
	return e.message
}

func (e *validationError) Unwrap() error {
	return ErrValidation
}

// Message returns the message of a validation error and false for any other error.
func Message(err error) (string, bool) {
	var v *validationError

	if errors.As(err, &v) {
		return v.message, true
	}

	return "", false
}
