package config

import (
	"fmt"
	"time"
)

// Defaults applied to zero-valued client settings before validation.
const (
	DefaultHTTPAddress          = "localhost:8000"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultDialTimeout          = 10 * time.Second
	DefaultWriteTimeout         = 5 * time.Second
	DefaultPingInterval         = 30 * time.Second
	DefaultSendQueueSize        = 16
	DefaultReconnectInitial     = 500 * time.Millisecond
	DefaultReconnectMaxBackoff  = 10 * time.Second
	DefaultReconnectMaxAttempts = 5
)

// ClientAdapter holds network settings used by the bootstrap HTTP adapter.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the table server.
	HTTPAddress string
	// RequestTimeout is the default timeout for bootstrap requests.
	RequestTimeout time.Duration
}

// ClientReconnect is the reconnect policy handed to the session controller.
type ClientReconnect struct {
	Enabled        bool
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	MaxAttempts    uint64
}

// ClientTransport holds realtime channel settings.
type ClientTransport struct {
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	PingInterval  time.Duration
	SendQueueSize int
	Reconnect     ClientReconnect
}

// ClientLog holds logger settings.
type ClientLog struct {
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains bootstrap HTTP settings.
	Adapter ClientAdapter
	// Transport contains realtime channel settings.
	Transport ClientTransport
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into a
// [ClientConfig], fills in defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	rc := cfg.Transport.Reconnect
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Transport: ClientTransport{
			DialTimeout:   cfg.Transport.DialTimeout,
			WriteTimeout:  cfg.Transport.WriteTimeout,
			PingInterval:  cfg.Transport.PingInterval,
			SendQueueSize: cfg.Transport.SendQueueSize,
			Reconnect: ClientReconnect{
				Enabled:        rc.Enabled,
				InitialBackoff: rc.InitialBackoff,
				MaxBackoff:     rc.MaxBackoff,
				MaxAttempts:    rc.MaxAttempts,
			},
		},
		Log: ClientLog{FilePath: cfg.Log.FilePath},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Transport.DialTimeout == 0 {
		cfg.Transport.DialTimeout = DefaultDialTimeout
	}
	if cfg.Transport.WriteTimeout == 0 {
		cfg.Transport.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Transport.PingInterval == 0 {
		cfg.Transport.PingInterval = DefaultPingInterval
	}
	if cfg.Transport.SendQueueSize == 0 {
		cfg.Transport.SendQueueSize = DefaultSendQueueSize
	}

	rc := &cfg.Transport.Reconnect
	if rc.InitialBackoff == 0 {
		rc.InitialBackoff = DefaultReconnectInitial
	}
	if rc.MaxBackoff == 0 {
		rc.MaxBackoff = DefaultReconnectMaxBackoff
	}
	if rc.MaxAttempts == 0 {
		rc.MaxAttempts = DefaultReconnectMaxAttempts
	}
}
