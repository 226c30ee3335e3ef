package pagemd

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL   = "internal"    // unexpected internal error
	EINVALID    = "invalid"     // invalid argument or state
	EINVALIDURL = "invalid_url" // empty, malformed, or unreachable URL
	EFETCH      = "fetch"       // transport-level failure fetching content
	ENOCONTENT  = "no_content"  // document has no extractable content region
	EWRITE      = "write"       // filesystem failure persisting output
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code identifies the class of error.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagemd error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
