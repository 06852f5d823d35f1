// Package errors provides the unified error type and factory functions for the
// Takweol case-analysis service.  Every layer (domain, application,
// infrastructure, interfaces) uses AppError as the single carrier for
// structured error information, enabling consistent HTTP responses, logging,
// and metrics.
//
// "No signal", a conversation in which no case category matched, is NOT an
// error and is never represented by this package; the analysis engine returns
// a nil result for that outcome.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout the service.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.New(errors.CodeNotFound, "case category divorce_x not found")
//	return errors.Wrap(repoErr, errors.CodeDatabaseError, "failed to insert lead")
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description, suitable for
	// inclusion in API responses.
	Message string

	// Detail carries supplementary context (IDs, query parameters) that aids
	// debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error, enabling errors.Is / errors.As traversal.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code_name>(<code_int>)] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s(%d)] %s: %s", e.Code.String(), int(e.Code), e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s(%d)] %s", e.Code.String(), int(e.Code), e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs a fresh AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError that wraps an existing error.  If err is nil,
// Wrap returns nil so it can be used inline on repository returns.  When err
// is already an *AppError and code is CodeUnknown the original code is
// preserved, preventing loss of classification during cross-layer propagation.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		var ae *AppError
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound reports whether err's chain carries CodeNotFound.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }

// IsInvalidParam reports whether err's chain carries CodeInvalidParam.
func IsInvalidParam(err error) bool { return IsCode(err, CodeInvalidParam) }

// IsConflict reports whether err's chain carries CodeConflict.
func IsConflict(err error) bool { return IsCode(err, CodeConflict) }

// GetCode extracts the ErrorCode from the first *AppError in err's chain,
// CodeUnknown when none is present, CodeOK for nil.  Middleware and metrics
// use this to obtain a single label without coupling to specific errors.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// NotFound constructs a CodeNotFound AppError.
func NotFound(message string) *AppError { return New(CodeNotFound, message) }

// InvalidParam constructs a CodeInvalidParam AppError.
func InvalidParam(message string) *AppError { return New(CodeInvalidParam, message) }

// Conflict constructs a CodeConflict AppError.
func Conflict(message string) *AppError { return New(CodeConflict, message) }

// Internal constructs a CodeInternal AppError.  Always log the underlying
// cause before or after calling Internal.
func Internal(message string) *AppError { return New(CodeInternal, message) }
