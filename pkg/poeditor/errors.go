package poeditor

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching failure categories with [errors.Is].
// The concrete types carry the detail (HTTP status, API code, message).
var (
	// ErrArgs is returned when input validation fails before a request is sent.
	ErrArgs = errors.New("poeditor: invalid arguments")

	// ErrAuth is returned when the API token is missing, invalid, or lacks
	// permission for the requested operation.
	ErrAuth = errors.New("poeditor: authentication rejected")

	// ErrRequest is returned when the service answers with a non-success
	// HTTP status or an API-level failure.
	ErrRequest = errors.New("poeditor: request failed")

	// ErrParse is returned when the response body cannot be decoded into the
	// expected shape.
	ErrParse = errors.New("poeditor: malformed response")
)

// ArgsError reports invalid input detected before any network call.
type ArgsError struct {
	Message string
	Err     error // underlying validation error, may be nil
}

func (e *ArgsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("poeditor: invalid arguments: %s: %v", e.Message, e.Err)
	}
	return "poeditor: invalid arguments: " + e.Message
}

func (e *ArgsError) Unwrap() error { return e.Err }

// Is reports a match against [ErrArgs].
func (e *ArgsError) Is(target error) bool { return target == ErrArgs }

// AuthError reports a rejected API token. StatusCode is set when the
// rejection came as an HTTP 401/403; Code and Message are set when it came
// as an API-level failure (codes 4011 and 4012).
type AuthError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *AuthError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("poeditor: authentication rejected (code %s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("poeditor: authentication rejected (HTTP %d)", e.StatusCode)
}

// Is reports a match against [ErrAuth].
func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// RequestError reports a failure answered by the service: a non-2xx HTTP
// status, or a success status carrying an API-level fail envelope.
type RequestError struct {
	StatusCode int    // HTTP status, 0 for API-level failures on HTTP 200
	Code       string // API error code, e.g. "4040"
	Message    string
}

func (e *RequestError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("poeditor: request failed (code %s): %s", e.Code, e.Message)
	case e.Code != "":
		return fmt.Sprintf("poeditor: request failed (code %s)", e.Code)
	default:
		return fmt.Sprintf("poeditor: request failed (HTTP %d)", e.StatusCode)
	}
}

// Is reports a match against [ErrRequest].
func (e *RequestError) Is(target error) bool { return target == ErrRequest }

// ParseError reports a response body that could not be decoded into the
// documented shape.
type ParseError struct {
	Message string
	Err     error // underlying decode error, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("poeditor: malformed response: %s: %v", e.Message, e.Err)
	}
	return "poeditor: malformed response: " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports a match against [ErrParse].
func (e *ParseError) Is(target error) bool { return target == ErrParse }
