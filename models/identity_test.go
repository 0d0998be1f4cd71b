package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionIdentity_String(t *testing.T) {
	id := SessionIdentity{TableID: "t1", PlayerID: "p1", Seat: 2}
	assert.Equal(t, "t1/p1#2", id.String())
}

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "unconnected", ConnectionUnconnected.String())
	assert.Equal(t, "connecting", ConnectionConnecting.String())
	assert.Equal(t, "open", ConnectionOpen.String())
	assert.Equal(t, "closed", ConnectionClosed.String())
	assert.Equal(t, "unknown", ConnectionState(42).String())
}
