package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeScrapeFailed  = "SCRAPE_FAILED"
	CodeStoreFailed   = "STORE_FAILED"
	CodeSyncFailed    = "SYNC_FAILED"
	CodeBadDraw       = "BAD_DRAW"
	CodeInternal      = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ScrapeFailed(site string, cause error) *AppError {
	return &AppError{
		Code:    CodeScrapeFailed,
		Message: fmt.Sprintf("scraping %s failed", site),
		Cause:   cause,
	}
}

func StoreFailed(file string, cause error) *AppError {
	return &AppError{
		Code:    CodeStoreFailed,
		Message: fmt.Sprintf("persisting %s failed", file),
		Cause:   cause,
	}
}

func SyncFailed(object string, cause error) *AppError {
	return &AppError{
		Code:    CodeSyncFailed,
		Message: fmt.Sprintf("object storage sync of %s failed", object),
		Cause:   cause,
	}
}

func BadDraw(message string) *AppError {
	return New(CodeBadDraw, message)
}
