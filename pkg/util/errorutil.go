package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by handlers and middleware.
const (
	CodeValidation       = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeTokenInvalidated = "TOKEN_INVALIDATED"
	CodeConfig           = "CONFIG_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

// DomainError standardizes application errors. Message is the public text
// returned to clients; Err carries the internal cause and is only logged.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// WithCause attaches an internal cause that is logged but never rendered.
func (e *DomainError) WithCause(err error) *DomainError {
	e.Err = err
	return e
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

// NewBadRequest is a 400 with a caller supplied code, used where the client
// sent well-formed input that the domain rejects (e.g. bad credentials).
func NewBadRequest(code, message string) error {
	return NewDomainError(code, message, http.StatusBadRequest, nil)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

// NewUnauthorizedCode is a 401 carrying a specific code so clients can tell
// an expired token from an invalidated one.
func NewUnauthorizedCode(code, message string) *DomainError {
	return NewDomainError(code, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

// NewConfigError reports a deployment problem. The cause is logged, the
// client only sees the public message.
func NewConfigError(message string, err error) error {
	return &DomainError{
		Code:       CodeConfig,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ErrorBody renders the uniform client-facing error shape.
func ErrorBody(e *DomainError) map[string]any {
	item := map[string]any{
		"statusCode":    e.HTTPStatus,
		"code":          e.Code,
		"publicMessage": e.Message,
	}
	if len(e.Details) > 0 {
		item["details"] = e.Details
	}
	return map[string]any{"errors": []map[string]any{item}}
}
