package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// ClientError is a 4xx answer from the user service.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	return statusText("client error", e.Status, e.Message)
}

// Is lets callers match well-known statuses with errors.Is.
func (e *ClientError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUsernameTaken:
		return e.Status == http.StatusConflict
	}
	return false
}

// ServerError is a 5xx answer, or any status the operation does not accept.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return statusText("server error", e.Status, e.Message)
}

// TransportError means no usable answer was received: network failure,
// cancellation, or a body that could not be decoded.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

func (e *TransportError) Is(target error) bool { return target == ErrUnavailable }

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Status, true
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

func newStatusError(status int, message string) error {
	if status >= 400 && status < 500 {
		return &ClientError{Status: status, Message: message}
	}
	return &ServerError{Status: status, Message: message}
}

func statusText(kind string, status int, message string) string {
	if message == "" {
		return fmt.Sprintf("%s: status %d", kind, status)
	}
	return fmt.Sprintf("%s: status %d: %s", kind, status, message)
}
