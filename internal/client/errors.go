package client

import "errors"

var (
	// ErrNotStarted is returned by Session.Run before a successful Start.
	ErrNotStarted = errors.New("session not started")
	// ErrNotOpened is returned for a connection attempt that closed before
	// reaching the open state.
	ErrNotOpened = errors.New("connection closed before it opened")
)
