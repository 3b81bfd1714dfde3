package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrEmptyInput covers requests rejected before any upstream call:
	// no image bytes, an unsupported content type, or question mode with
	// a blank question.
	ErrEmptyInput = errors.New("empty input")
	// ErrUpstream covers model-call failures (network, auth, quota).
	ErrUpstream = errors.New("upstream call failed")
	// ErrExport covers a single export format failing to render.
	ErrExport = errors.New("export failed")
	// ErrInvalidInput covers malformed request parameters.
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func EmptyInputError(message string) error {
	return NewAppError("EMPTY_INPUT", message, ErrEmptyInput)
}

func UpstreamError(message string, cause error) error {
	return NewAppError("UPSTREAM_ERROR", message, errors.Join(ErrUpstream, cause))
}

func ExportError(format string, cause error) error {
	return NewAppError("EXPORT_ERROR", format, errors.Join(ErrExport, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus maps an application error to the status code the HTTP
// surface answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
