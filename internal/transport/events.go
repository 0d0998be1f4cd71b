package transport

import "github.com/MKhiriev/go-poker-client/models"

// Event is one item of the ordered stream returned by [Connection.Events]:
// either [Inbound] or [StateChanged].
type Event interface {
	event()
}

// Inbound carries one raw message exactly as framed by the websocket.
type Inbound struct {
	Payload []byte
}

// StateChanged reports a transition of the connection. Err is set when the
// transition to closed was caused by a failure, and is nil for the open
// transition.
type StateChanged struct {
	State models.ConnectionState
	Err   error
}

func (Inbound) event()      {}
func (StateChanged) event() {}
