package service

import (
	"errors"
	"fmt"
)

var (
	// Submission errors. Each one means the action was dropped without being
	// queued for the transport.
	ErrNotConnected  = errors.New("not connected")
	ErrNoSnapshot    = errors.New("no table snapshot yet")
	ErrSnapshotStale = errors.New("table snapshot is stale")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrInvalidAction = errors.New("invalid action")
	ErrSendFailed    = errors.New("send failed")

	// Bootstrap failure classes.
	ErrUnreachable       = errors.New("server unreachable")
	ErrRejected          = errors.New("rejected by server")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrSessionClosed     = errors.New("session closed")

	ErrIdentityAlreadySet = errors.New("session identity already set")
)

// BootstrapStep names one of the request/response calls of a session.
type BootstrapStep string

const (
	StepCreateTable BootstrapStep = "create table"
	StepJoinTable   BootstrapStep = "join table"
	StepStartHand   BootstrapStep = "start hand"
	StepFetchState  BootstrapStep = "fetch state"
)

// BootstrapError reports which step failed and why. Kind is one of
// [ErrUnreachable], [ErrRejected], [ErrMalformedResponse] or
// [ErrSessionClosed]; Err is the underlying adapter error.
type BootstrapError struct {
	Step BootstrapStep
	Kind error
	Err  error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Kind, e.Err)
}

func (e *BootstrapError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
