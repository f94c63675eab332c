package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend rejects the token.
var ErrUnauthorized = errors.New("unauthorized: token rejected")

// ErrNotFound is returned by callers (e.g. the detail presenter) when a
// fetch-by-id comes back empty. GetAnimal itself reports absence as
// (nil, nil); emptiness is not a client error.
var ErrNotFound = errors.New("animal not found")

// TransportError wraps a connectivity or timeout failure: the request
// never produced a usable HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a response that arrived but could not be used:
// an unexpected status code or a body that does not decode.
type ProtocolError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ProtocolError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("protocol error during %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("protocol error during %s: %s", e.Op, e.Message)
}
