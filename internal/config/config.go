// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the poker
// table client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout of the table server's HTTP API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Transport holds the realtime channel settings.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Log holds logging destination settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the HTTP bootstrap API settings.
type Adapter struct {
	// HTTPAddress is the base address of the table server, either host:port
	// or a full URL (e.g. "localhost:8000", "https://poker.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every bootstrap request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Transport holds the realtime channel settings.
type Transport struct {
	// DialTimeout is the longest a connection may stay in the connecting
	// state before it is treated as failed.
	// Env: TRANSPORT_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// WriteTimeout bounds a single frame write.
	// Env: TRANSPORT_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// PingInterval is the keepalive period. Zero selects the default,
	// a negative value disables pings.
	// Env: TRANSPORT_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`

	// SendQueueSize is the capacity of the outbound frame queue.
	// Env: TRANSPORT_SEND_QUEUE_SIZE
	SendQueueSize int `env:"SEND_QUEUE_SIZE"`

	// Reconnect configures the optional automatic reconnect policy.
	Reconnect Reconnect `envPrefix:"RECONNECT_"`
}

// Reconnect configures the explicit reconnect policy of the session.
type Reconnect struct {
	// Enabled turns automatic reconnection on.
	// Env: TRANSPORT_RECONNECT_ENABLED
	Enabled bool `env:"ENABLED"`

	// InitialBackoff is the delay before the first reconnect attempt.
	// Env: TRANSPORT_RECONNECT_INITIAL_BACKOFF
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF"`

	// MaxBackoff caps the exponential delay between attempts.
	// Env: TRANSPORT_RECONNECT_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`

	// MaxAttempts is the number of reconnect attempts before giving up.
	// Env: TRANSPORT_RECONNECT_MAX_ATTEMPTS
	MaxAttempts uint64 `env:"MAX_ATTEMPTS"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the log file. Empty selects a file next to the executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
