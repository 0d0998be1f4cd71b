package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is returned when the request produced no HTTP response.
	ErrUnreachable = errors.New("table server unreachable")
	// ErrRejected is returned for every non-2xx response.
	ErrRejected = errors.New("request rejected by table server")
	// ErrMalformedResponse is returned when a 2xx body cannot be used.
	ErrMalformedResponse = errors.New("malformed table server response")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// RejectedError carries the status and body of a non-2xx response. It
// unwraps to [ErrRejected] and, where one exists, to the status sentinel.
type RejectedError struct {
	StatusCode int
	Body       string

	status error
}

func (e *RejectedError) Error() string {
	if e.status != nil {
		return fmt.Sprintf("%s: %s (http %d): %s", ErrRejected, e.status, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s (http %d): %s", ErrRejected, e.StatusCode, e.Body)
}

func (e *RejectedError) Unwrap() []error {
	if e.status != nil {
		return []error{ErrRejected, e.status}
	}
	return []error{ErrRejected}
}
