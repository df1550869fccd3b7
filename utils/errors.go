package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an application error so the HTTP layer can pick a status code.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindInvalidInput ErrorKind = "invalid_input"
	KindUnauthorized ErrorKind = "unauthorized"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

// AppError is the error type returned by the service layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInputf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the error's kind, or KindInternal for errors that are not AppErrors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
