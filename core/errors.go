// Package core holds the small set of cross-cutting types shared by the
// sat, la, ac and model packages: a common error shape, a listener
// abstraction, and the reason identifiers used by both the SAT and LA
// propagation machinery.
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// BaseError is the common shape every package-level error type embeds.
// It mirrors the teacher's flat {Op, Message} LogicError, extended with
// an optional wrapped cause that errors.Unwrap / errors.Is / errors.As
// reach through Unwrap. BaseError has no Cause method, so pkg/errors'
// errors.Cause applied to a BaseError returns it unchanged.
type BaseError struct {
	// Op is the qualified operation that failed, e.g. "num.Rational.Div".
	Op string
	// Message is a human-readable description of the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (e *BaseError) Unwrap() error { return e.Cause }

// NewBaseError builds a BaseError with no wrapped cause.
func NewBaseError(op, message string) *BaseError {
	return &BaseError{Op: op, Message: message}
}

// Wrap builds a BaseError that wraps an existing error with pkg/errors,
// recording a stack trace at the wrap site. The stack lives on the
// pkg/errors value that Unwrap returns (print that value with %+v);
// BaseError's own Error string does not include it.
func Wrap(op, message string, cause error) *BaseError {
	return &BaseError{Op: op, Message: message, Cause: errors.Wrap(cause, message)}
}
