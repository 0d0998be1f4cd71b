package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid bootstrap adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidTransportConfigs indicates invalid realtime channel settings
	// (for example, zero dial timeout or non-positive queue size).
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidReconnectConfigs indicates an enabled reconnect policy with
	// unusable backoff bounds or zero attempts.
	ErrInvalidReconnectConfigs = errors.New("invalid reconnect configuration")
	// ErrNegativeDuration indicates a negative timeout or interval.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
