package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinels for errors.Is checks across the typed errors below.
var (
	ErrInvalidInput = stderrors.New("invalid input")
	ErrMissing      = stderrors.New("not found")
	ErrExhausted    = stderrors.New("generation failed")
)

// ErrValidation reports missing or malformed caller input.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ErrValidation) Is(target error) bool {
	return target == ErrInvalidInput
}

// ErrNotFound reports a reference to a record that does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *ErrNotFound) Is(target error) bool {
	return target == ErrMissing
}

// ErrGeneration is returned when an identifier or code could not be minted.
// It is not expected to happen in practice.
type ErrGeneration struct {
	What string
	Err  error
}

func (e *ErrGeneration) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generate %s", e.What)
	}
	return fmt.Sprintf("generate %s: %v", e.What, e.Err)
}

func (e *ErrGeneration) Unwrap() error {
	return e.Err
}

func (e *ErrGeneration) Is(target error) bool {
	return target == ErrExhausted
}

// ErrUnauthorized is returned by the admin gate.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// NewValidation is a shorthand for &ErrValidation{...}.
func NewValidation(field, message string) error {
	return &ErrValidation{Field: field, Message: message}
}

// NewNotFound is a shorthand for &ErrNotFound{...}.
func NewNotFound(resource, id string) error {
	return &ErrNotFound{Resource: resource, ID: id}
}

// IsValidation reports whether err carries an *ErrValidation.
func IsValidation(err error) bool {
	return stderrors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err carries an *ErrNotFound.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrMissing)
}

// IsGeneration reports whether err carries an *ErrGeneration.
func IsGeneration(err error) bool {
	return stderrors.Is(err, ErrExhausted)
}
