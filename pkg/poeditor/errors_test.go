package poeditor

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorSentinelMatching(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		match error
		other error
	}{
		{"args", &ArgsError{Message: "name is required"}, ErrArgs, ErrAuth},
		{"auth http", &AuthError{StatusCode: 401}, ErrAuth, ErrRequest},
		{"auth api", &AuthError{Code: "4011", Message: "Invalid API Token"}, ErrAuth, ErrParse},
		{"request http", &RequestError{StatusCode: 500}, ErrRequest, ErrAuth},
		{"request api", &RequestError{Code: "4040", Message: "Project not found"}, ErrRequest, ErrArgs},
		{"parse", &ParseError{Message: "decode response body"}, ErrParse, ErrRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.match) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.match)
			}
			if errors.Is(tt.err, tt.other) {
				t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, tt.other)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth http", &AuthError{StatusCode: 403}, "HTTP 403"},
		{"auth api", &AuthError{Code: "4011", Message: "Invalid API Token"}, "Invalid API Token"},
		{"request http", &RequestError{StatusCode: 500}, "HTTP 500"},
		{"request api", &RequestError{Code: "4040", Message: "Project not found"}, "Project not found"},
		{"args", &ArgsError{Message: "name is required"}, "name is required"},
		{"parse", &ParseError{Message: "decode result"}, "decode result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ParseError{Message: "decode response body", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}

	argsCause := errors.New("field validation failed")
	argsErr := &ArgsError{Message: "bad entry", Err: argsCause}
	if !errors.Is(argsErr, argsCause) {
		t.Error("ArgsError should unwrap to its cause")
	}
}
