package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "host and port", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "http scheme", raw: "http://127.0.0.1:8000/", want: "http://127.0.0.1:8000"},
		{name: "https with prefix", raw: " https://poker.example.com/api/ ", want: "https://poker.example.com/api"},
		{name: "empty", raw: "  ", wantErr: ErrEmptyAddress},
		{name: "ws scheme", raw: "ws://localhost:8000", wantErr: ErrUnsupportedScheme},
		{name: "no host", raw: "http://", wantErr: ErrAddressWithoutHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{name: "plain http", base: "localhost:8000", want: "ws://localhost:8000/ws/tables/t1?player_id=p1"},
		{name: "https becomes wss", base: "https://poker.example.com", want: "wss://poker.example.com/ws/tables/t1?player_id=p1"},
		{name: "path prefix kept", base: "http://h:1/game/", want: "ws://h:1/game/ws/tables/t1?player_id=p1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WebsocketURL(tt.base, "t1", "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWebsocketURL_EscapesPlayerID(t *testing.T) {
	got, err := WebsocketURL("localhost:8000", "default", "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8000/ws/tables/default?player_id=a+b%26c", got)
}

func TestWebsocketURL_InvalidBase(t *testing.T) {
	_, err := WebsocketURL("", "t1", "p1")
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
