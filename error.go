package cnesbeds

import (
	"errors"
	"fmt"
)

// Application error codes. Codes classify errors for the retry policy and
// for user-facing reporting; they are not meant to carry detail.
const (
	EINVALID     = "invalid"      // malformed input or data (fatal, never retried)
	ENOTFOUND    = "not_found"    // entity does not exist
	EEMPTY       = "empty_result" // page fetched but expected content absent (retryable)
	EUNAVAILABLE = "unavailable"  // transient network failure, e.g. timeout (retryable)
	EUNREACHABLE = "unreachable"  // connection cannot be established (never retried)
	ERETRYLIMIT  = "retry_limit"  // retry budget exhausted
	EINTERNAL    = "internal"     // internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code classifies the error for programmatic handling.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cnesbeds error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns "".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
