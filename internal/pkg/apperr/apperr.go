// Package apperr classifies application-level failures with stable business
// error codes. Domain and transport failures are folded into a single coded
// shape so the presentation layer can phrase validation problems, business-rule
// rejections, and infrastructure faults differently.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Code identifies a failure class. Codes are stable and safe to expose to clients.
type Code string

const (
	CodeValidationError       Code = "VALIDATION_ERROR"
	CodeBusinessRuleViolation Code = "BUSINESS_RULE_VIOLATION"
	CodeNotFound              Code = "NOT_FOUND"
	CodeBadRequest            Code = "BAD_REQUEST"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodeSessionExpired        Code = "SESSION_EXPIRED"
	CodeForbidden             Code = "FORBIDDEN"
	CodeConflict              Code = "CONFLICT"
	CodeUnprocessableEntity   Code = "UNPROCESSABLE_ENTITY"
	CodeNetworkError          Code = "NETWORK_ERROR"
	CodeServerError           Code = "SERVER_ERROR"
	CodeHTTPError             Code = "HTTP_ERROR"
)

// AppError is the interface all coded application errors implement.
type AppError interface {
	error
	HTTPCode() int   // HTTP status code for the transport layer
	ErrorCode() Code // stable business error code
	Message() string // user-facing message
	Details() string // optional diagnostic detail
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode Code
	message   string
	details   string
}

// New creates a coded application error.
func New(httpCode int, errorCode Code, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the stable business error code.
func (e *BaseError) ErrorCode() Code {
	return e.errorCode
}

// Message returns the user-facing message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns optional diagnostic detail.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying diagnostic detail.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined failures shared across handlers.
var (
	ErrOrderNotFound = New(
		http.StatusNotFound,
		CodeNotFound,
		"verification order not found",
	)

	ErrObservationNotFound = New(
		http.StatusNotFound,
		CodeNotFound,
		"observation not found",
	)

	ErrReportNotFound = New(
		http.StatusNotFound,
		CodeNotFound,
		"report not found",
	)

	ErrVerifierNotFound = New(
		http.StatusNotFound,
		CodeNotFound,
		"verifier not found",
	)

	ErrStaleOrderVersion = New(
		http.StatusConflict,
		CodeConflict,
		"order was modified by another operation, reload and retry",
	)

	ErrIllegalStatusTransition = New(
		http.StatusUnprocessableEntity,
		CodeBusinessRuleViolation,
		"requested status transition is not allowed",
	)

	ErrVerifierNotEligible = New(
		http.StatusUnprocessableEntity,
		CodeBusinessRuleViolation,
		"verifier is not eligible for this assignment",
	)
)
