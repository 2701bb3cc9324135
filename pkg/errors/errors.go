package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrValidation   ErrorCode = "VALIDATION"
	ErrDataTooLarge ErrorCode = "DATA_TOO_LARGE"
	ErrIO           ErrorCode = "IO"
	ErrParse        ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Overlay errors
	ErrSurface ErrorCode = "SURFACE"
)

// FenestraError represents a structured error with code and details
type FenestraError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FenestraError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FenestraError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FenestraError) Is(target error) bool {
	var targetErr *FenestraError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FenestraError with the given code and message
func New(code ErrorCode, message string) *FenestraError {
	return &FenestraError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FenestraError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FenestraError {
	return &FenestraError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FenestraError
func Wrap(err error, code ErrorCode, message string) *FenestraError {
	if err == nil {
		return nil
	}
	return &FenestraError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FenestraError {
	if err == nil {
		return nil
	}
	return &FenestraError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FenestraError) WithDetail(key string, value interface{}) *FenestraError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ferr *FenestraError
	if errors.As(err, &ferr) {
		return ferr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FenestraError
func GetErrorCode(err error) ErrorCode {
	var ferr *FenestraError
	if errors.As(err, &ferr) {
		return ferr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FenestraError
func GetErrorDetails(err error) map[string]interface{} {
	var ferr *FenestraError
	if errors.As(err, &ferr) {
		return ferr.Details
	}
	return nil
}
