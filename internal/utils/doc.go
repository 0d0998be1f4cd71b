// Package utils provides small helpers shared by the poker client packages:
// the resty-based HTTP client, base URL normalisation and realtime endpoint
// derivation, JSON response writing for the in-process fake server, and the
// action id generator.
package utils
