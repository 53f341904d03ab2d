package service

import "errors"

// invalidInputError marks a request the caller must fix (400).
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

func errInvalid(msg string) error { return invalidInputError{msg: msg} }

// ErrInvalidInput wraps msg as a validation failure.
func ErrInvalidInput(msg string) error { return errInvalid(msg) }

// IsInvalidInput reports whether err is a client-side validation failure.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}

// ErrStreamingUnsupported is returned for chat requests with stream=true.
var ErrStreamingUnsupported = errors.New("streaming not yet implemented")
