package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindStorage
)

// Error is an error with an explicit kind attached.
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

// Validation returns a validation error with the given message.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf returns a formatted validation error.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound wraps err as a not-found error. Not-found is tracked in the
// taxonomy but is still surfaced as a generic server error by handlers.
func NotFound(message string, err error) error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

// Storage wraps err as a storage fault.
func Storage(message string, err error) error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// MessageOf returns the kinded message of err, falling back to err.Error().
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
