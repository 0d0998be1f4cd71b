package service

import (
	"context"

	"github.com/MKhiriev/go-poker-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ActionSender is the part of the transport the submitter writes to. Send
// must not block and must report a closed channel as transport.ErrNotOpen.
type ActionSender interface {
	Send(payload []byte) error
}

// Reconciler applies inbound messages to the table store. It is the only
// writer of the snapshot, the legal action set and the connection state, and
// its methods must be called from a single goroutine in arrival order.
type Reconciler interface {
	// Apply decodes one raw payload and applies it. A payload that cannot be
	// decoded or has an unknown type is logged and recorded as a notice and
	// leaves the rest of the state untouched. The decoded message is
	// returned, or nil when decoding failed.
	Apply(raw []byte) models.InboundMessage

	// ApplySnapshot applies a snapshot obtained outside the realtime channel,
	// e.g. after a reconnect.
	ApplySnapshot(m models.SnapshotMessage)

	// MarkStale clears the legal action set and blocks submission until the
	// next snapshot is applied.
	MarkStale()

	// SetConnection records a transport state change. Moving to closed also
	// marks the state stale.
	SetConnection(state models.ConnectionState, err error)
}

// Submitter turns a chosen action into an outbound message and hands it to
// the transport.
type Submitter interface {
	// Submit sends action for the local seat in the current hand. The
	// returned message is the one that was queued. Any error means the action
	// was dropped; the drop is logged and recorded in the store.
	Submit(action models.ActionDescriptor) (models.OutboundAction, error)
}

// Bootstrapper runs the request/response calls around a session.
type Bootstrapper interface {
	// Bootstrap creates a table, joins it and starts a hand, in that order.
	// Failures are returned as *BootstrapError naming the failed step.
	Bootstrap(ctx context.Context) (models.BootstrapResult, error)

	// FetchState downloads the current snapshot of tableID.
	FetchState(ctx context.Context, tableID string) (models.SnapshotMessage, error)
}

// IDGenerator issues action ids unique within a session.
type IDGenerator interface {
	Generate() string
}
