package apperror

import "fmt"

// AppError is the error type services return to handlers. Code and Message
// are sent to the client as-is; Err stays server side.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// New builds a sentinel. Sentinels are compared by identity, so two errors
// sharing a code are still distinct for errors.Is.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap attaches a client-facing code and message to a lower-level cause.
// A nil cause yields nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	e := New(code, message, httpStatus)
	e.Err = err
	return e
}
