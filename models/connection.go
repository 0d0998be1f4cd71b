package models

// ConnectionState is the lifecycle position of the realtime channel.
type ConnectionState int

const (
	ConnectionUnconnected ConnectionState = iota
	ConnectionConnecting
	ConnectionOpen
	ConnectionClosed
)

var connectionStateNames = map[ConnectionState]string{
	ConnectionUnconnected: "unconnected",
	ConnectionConnecting:  "connecting",
	ConnectionOpen:        "open",
	ConnectionClosed:      "closed",
}

func (s ConnectionState) String() string {
	if name, ok := connectionStateNames[s]; ok {
		return name
	}
	return "unknown"
}
