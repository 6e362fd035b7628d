// Package domainerrors provides coded errors for the domain layer.
//
// Services return these so transport layers can translate them into HTTP
// responses without inspecting error strings. Stores return sentinel errors
// (pkg/platform/sentinel); services wrap them with a code here.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeBadRequest marks malformed transport input (unparseable body, bad id).
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput marks input rejected at a trust boundary (bad enum, nil id).
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation marks a domain validation failure (range, empty content).
	CodeValidation Code = "validation"
	// CodeNotFound marks a reference to an entity that does not exist.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized marks an actor without membership or participation rights.
	CodeUnauthorized Code = "unauthorized"
	// CodeGated marks an operation that requires verified professional status.
	CodeGated Code = "gated"
	// CodeRoleViolation marks an operation invoked on the wrong user role.
	CodeRoleViolation Code = "role_violation"
	// CodeConflict marks a duplicate (match, badge, verification already decided).
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks a broken model invariant.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks an unexpected internal failure.
	CodeInternal Code = "internal"
)

// Error is a domain error with a machine-readable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-facing message from err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a domain error code to an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized, CodeGated:
		return http.StatusForbidden
	case CodeRoleViolation:
		return http.StatusUnprocessableEntity
	case CodeConflict, CodeInvariantViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
