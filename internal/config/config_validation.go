// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] carries no values
// that cannot be fixed by defaults later on.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 ||
		cfg.Transport.DialTimeout < 0 ||
		cfg.Transport.WriteTimeout < 0 {
		return ErrNegativeDuration
	}
	if cfg.Transport.SendQueueSize < 0 {
		return ErrInvalidTransportConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	t := cfg.Transport
	if t.DialTimeout <= 0 || t.WriteTimeout <= 0 || t.SendQueueSize <= 0 {
		return ErrInvalidTransportConfigs
	}

	if t.Reconnect.Enabled {
		rc := t.Reconnect
		if rc.InitialBackoff <= 0 || rc.MaxBackoff < rc.InitialBackoff || rc.MaxAttempts == 0 {
			return ErrInvalidReconnectConfigs
		}
	}

	return nil
}
