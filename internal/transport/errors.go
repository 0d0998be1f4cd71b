package transport

import "errors"

var (
	// ErrNotOpen is returned by Send when the connection is not open. The
	// payload is dropped.
	ErrNotOpen = errors.New("connection is not open")
	// ErrSendQueueFull is returned by Send when the outbound queue is
	// saturated. The payload is dropped.
	ErrSendQueueFull = errors.New("send queue is full")
	// ErrConnectFailed wraps every failure to complete the handshake.
	ErrConnectFailed = errors.New("connect failed")
	// ErrConnectionLost wraps read and write failures of an open connection,
	// including a close initiated by the server.
	ErrConnectionLost = errors.New("connection lost")
)
