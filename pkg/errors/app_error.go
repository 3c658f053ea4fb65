package errors

import "fmt"

// Error codes carried to the HTTP boundary. Upstream and persistence
// failures stay distinct so callers can tell which side effect fired.
const (
	CodeUnauthorized  = "unauthorized"
	CodeBadRequest    = "bad_request"
	CodeNotFound      = "not_found"
	CodeUpstream      = "upstream_failure"
	CodePersistence   = "persistence_failure"
	CodeMissingConfig = "missing_config"
	CodeInternal      = "internal_error"
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrUnauthorized = func() *AppError {
		return &AppError{Code: CodeUnauthorized, Message: "unauthorized"}
	}
	ErrBadRequest = func(message string) *AppError {
		return &AppError{Code: CodeBadRequest, Message: message}
	}
	ErrNotFound = func(message string) *AppError {
		return &AppError{Code: CodeNotFound, Message: message}
	}
	ErrUpstream = func(err error) *AppError {
		return &AppError{Code: CodeUpstream, Message: "media service request failed", Err: err}
	}
	ErrPersistence = func(err error) *AppError {
		return &AppError{Code: CodePersistence, Message: "database operation failed", Err: err}
	}
	ErrMissingConfig = func(message string) *AppError {
		return &AppError{Code: CodeMissingConfig, Message: message}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
	}
)
