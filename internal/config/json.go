package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted from
// a JSON config file. Durations may be given as strings ("30s") or as
// nanosecond numbers.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Transport struct {
		DialTimeout   Duration `json:"dial_timeout"`
		WriteTimeout  Duration `json:"write_timeout"`
		PingInterval  Duration `json:"ping_interval"`
		SendQueueSize int      `json:"send_queue_size"`

		Reconnect struct {
			Enabled        bool     `json:"enabled"`
			InitialBackoff Duration `json:"initial_backoff"`
			MaxBackoff     Duration `json:"max_backoff"`
			MaxAttempts    uint64   `json:"max_attempts"`
		} `json:"reconnect,omitempty"`
	} `json:"transport,omitempty"`

	Log struct {
		FilePath string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	rc := jsonCfg.Transport.Reconnect
	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Transport: Transport{
			DialTimeout:   time.Duration(jsonCfg.Transport.DialTimeout),
			WriteTimeout:  time.Duration(jsonCfg.Transport.WriteTimeout),
			PingInterval:  time.Duration(jsonCfg.Transport.PingInterval),
			SendQueueSize: jsonCfg.Transport.SendQueueSize,
			Reconnect: Reconnect{
				Enabled:        rc.Enabled,
				InitialBackoff: time.Duration(rc.InitialBackoff),
				MaxBackoff:     time.Duration(rc.MaxBackoff),
				MaxAttempts:    rc.MaxAttempts,
			},
		},
		Log:          Log{FilePath: jsonCfg.Log.FilePath},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
