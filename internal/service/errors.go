package service

import (
	"errors"
	"fmt"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

type Kind int

const (
	KindInvalid Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindPaymentRequired
)

// Error carries a client-facing message and the category the transport maps to a status code.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ValidationError lists the fields that failed a check the service performs itself.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}

// ErrInvalidCredentials covers both an unknown login and a wrong password.
var ErrInvalidCredentials = newError(KindUnauthorized, "Invalid credentials", nil)

// notFound maps a repository miss to a client message and passes other errors through.
func notFound(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindNotFound, message, err)
	}
	return err
}

func conflict(err error, message string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return newError(KindConflict, message, err)
	}
	return err
}
