package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a table server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout bootstrap request timeout (e.g., "10s")
//	-dial-timeout realtime handshake timeout (e.g., "10s")
//	-write-timeout frame write timeout (e.g., "5s")
//	-ping-interval keepalive period, negative disables (e.g., "30s")
//	-send-queue outbound frame queue size
//	-reconnect enable automatic reconnect
//	-reconnect-initial first reconnect delay (e.g., "500ms")
//	-reconnect-max reconnect delay cap (e.g., "10s")
//	-reconnect-attempts number of reconnect attempts
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, dialTimeout, writeTimeout, pingInterval time.Duration
	var sendQueueSize int
	var reconnect bool
	var reconnectInitial, reconnectMax time.Duration
	var reconnectAttempts uint64
	var logFile string

	fs := flag.NewFlagSet("poker-client", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Table server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Bootstrap request timeout (e.g., 10s)")
	fs.DurationVar(&dialTimeout, "dial-timeout", 0, "Realtime handshake timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Frame write timeout (e.g., 5s)")
	fs.DurationVar(&pingInterval, "ping-interval", 0, "Keepalive period (e.g., 30s)")
	fs.IntVar(&sendQueueSize, "send-queue", 0, "Outbound frame queue size")
	fs.BoolVar(&reconnect, "reconnect", false, "Reconnect automatically after connection loss")
	fs.DurationVar(&reconnectInitial, "reconnect-initial", 0, "First reconnect delay (e.g., 500ms)")
	fs.DurationVar(&reconnectMax, "reconnect-max", 0, "Reconnect delay cap (e.g., 10s)")
	fs.Uint64Var(&reconnectAttempts, "reconnect-attempts", 0, "Number of reconnect attempts")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Transport: Transport{
			DialTimeout:   dialTimeout,
			WriteTimeout:  writeTimeout,
			PingInterval:  pingInterval,
			SendQueueSize: sendQueueSize,
			Reconnect: Reconnect{
				Enabled:        reconnect,
				InitialBackoff: reconnectInitial,
				MaxBackoff:     reconnectMax,
				MaxAttempts:    reconnectAttempts,
			},
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
