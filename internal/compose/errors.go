package compose

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure class. Every code defined here is a
// request-caused failure that the API layer maps to HTTP 400.
type Code string

const (
	// CodeValidation marks a malformed or out-of-range request.
	CodeValidation Code = "VALIDATION"
	// CodeDownload marks a network or HTTP failure fetching a source image.
	CodeDownload Code = "DOWNLOAD"
	// CodeDecode marks a response body that is not a readable image.
	CodeDecode Code = "DECODE"
)

// Error is a structured pipeline error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf extracts the error code from err. It returns the empty string
// when err does not carry an *Error anywhere in its chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsClient reports whether err was caused by the request and should
// surface as a client error rather than an internal one.
func IsClient(err error) bool { return CodeOf(err) != "" }

// UserMessage returns the human-readable message without the code
// prefix. Non-pipeline errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
