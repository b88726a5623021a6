package fov

import (
	"errors"
	"fmt"
)

// Sentinel errors for every way an input can be rejected. Callers match them with errors.Is.
var (
	ErrMalformedRatio       = errors.New("malformed aspect ratio")
	ErrZeroHeight           = errors.New("aspect ratio height is zero")
	ErrInvalidAspectRatio   = errors.New("aspect ratio must be positive and finite")
	ErrInvalidFOV           = errors.New("field of view must be a finite number of degrees in (0, 180]")
	ErrConflictingDirection = errors.New("cannot specify both -h and -v")
	ErrMissingDirection     = errors.New("must specify either -h or -v")
	ErrMissingArguments     = errors.New("must specify aspect ratio and input FOV")
	ErrGeometricOverflow    = errors.New("computed field of view is outside (0, 180] degrees")
)

// Field names used in InputError
const (
	FieldAspectRatio = "aspect ratio"
	FieldFOV         = "fov"
	FieldResult      = "result"
)

// InputError reports which input failed validation and why
type InputError struct {
	// Field identifies the rejected input (see the Field constants)
	Field string

	// Input is the raw token or formatted value that was rejected
	Input string

	// Err is one of the package sentinel errors
	Err error
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Input == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func inputError(field, input string, err error) error {
	return &InputError{Field: field, Input: input, Err: err}
}
