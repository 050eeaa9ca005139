package service

import "errors"

var (
	// ErrInvalidInput marks errors caused by the caller's data.
	ErrInvalidInput = errors.New("service: invalid input")
	// ErrInvalidID is returned for identifiers that cannot exist.
	ErrInvalidID = errors.New("service: invalid id")
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("service: not found")
)

// ValidationError describes which input was rejected. It matches ErrInvalidInput.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}
