// Package config provides configuration loading, merging, and validation
// facilities for the poker table client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (prefixed with POKER_)
//  2. Command-line flags
//  3. JSON config file
//
// [GetClientConfig] is the entry point. It fills unset values with defaults
// and validates the result.
package config
