// Package apperr defines the closed error taxonomy used across services and
// the action wrapper. Business logic returns *Error values and callers branch
// on Kind instead of inspecting driver error strings.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindAuthRequired
	KindForbidden
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAuthRequired:
		return "auth_required"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// Error carries a user-facing message for expected failures. Err, when set,
// holds the underlying cause and is meant for logs only.
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

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func AuthRequired(message string) *Error {
	return &Error{Kind: KindAuthRequired, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unexpectedf wraps an internal failure whose message must not reach the
// client as-is.
func Unexpectedf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUnexpected, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain. Plain errors are Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// IsExpected reports whether the error carries a message safe to show to the
// client. Unexpected errors must be replaced with a generic message.
func IsExpected(err error) bool {
	return KindOf(err) != KindUnexpected
}

// FromDB translates persistence-layer errors into the taxonomy. The gorm
// connection must run with TranslateError enabled so unique and foreign key
// violations arrive as gorm sentinel errors rather than driver codes.
func FromDB(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("%s not found", resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("%s already exists", resource)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Conflict("%s is referenced by other records", resource)
	default:
		return &Error{Kind: KindUnexpected, Message: "storage error", Err: err}
	}
}
