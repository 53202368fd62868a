package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrTaskNotFound is matched by every not-found failure about a task.
var ErrTaskNotFound = errors.New("task not found")

// Kind classifies business failures. Turning a kind into a wire status
// is left to the transport.
type Kind uint8

const (
	KindBusiness Kind = iota + 1
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "BusinessError"
	case KindNotFound:
		return "NotFoundError"
	case KindValidation:
		return "ValidationError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is a failure whose Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
	// Fields maps a request field to its violations. Only validation
	// failures carry it, and it may be empty.
	Fields map[string][]string
	Cause  error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewBusinessError(message string) *Error {
	return &Error{
		Kind:    KindBusiness,
		Message: message,
	}
}

func NewNotFoundError(taskID uuid.UUID) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Task with id %s not found", taskID),
		Cause:   ErrTaskNotFound,
	}
}

func NewValidationError(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Fields:  map[string][]string{},
	}
}

func NewValidationErrorFromFields(fields map[string][]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "One or more validation errors occurred",
		Fields:  fields,
	}
}

// AsError reports whether err is, or wraps, a business failure.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
