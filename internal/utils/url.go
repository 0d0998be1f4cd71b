package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyAddress       = errors.New("empty address")
	ErrUnsupportedScheme  = errors.New("unsupported address scheme")
	ErrAddressWithoutHost = errors.New("address must include host")
)

// NormalizeBaseURL turns a configured address such as "localhost:8000" or
// "https://poker.example.com/" into an absolute http(s) base URL without a
// trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return "", ErrAddressWithoutHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// WebsocketURL derives the realtime endpoint of a table from the HTTP base
// URL: http becomes ws, https becomes wss, and the path is
// /ws/tables/{tableID}?player_id={playerID}. A path prefix on the base URL is
// kept.
func WebsocketURL(baseURL, tableID, playerID string) (string, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return "", err
	}
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}

	if u.Path == "" {
		u.Path = "/"
	}
	u = u.JoinPath("ws", "tables", tableID)
	u.RawQuery = url.Values{"player_id": []string{playerID}}.Encode()

	return u.String(), nil
}
