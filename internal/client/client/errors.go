package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError is returned for non-2xx responses. It unwraps to
// ErrUnauthorized, ErrNotFound or ErrUnexpectedStatus.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string

	kind error
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.Code, e.kind)
	}
	return fmt.Sprintf("%s %s: status %d: %v: %s", e.Method, e.Path, e.Code, e.kind, e.Message)
}

func (e *StatusError) Unwrap() error { return e.kind }

// ServerMessage returns the description the server attached to a failed
// response, or "".
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
