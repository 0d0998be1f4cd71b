package utils

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// ActionIDGenerator issues action ids that are unique within a session and
// across sessions: a UUIDv7 chosen once per generator followed by a
// monotonically increasing counter, e.g. "0190f5c2-...-8d1e-1".
//
// It is safe for concurrent use.
type ActionIDGenerator struct {
	prefix  string
	counter atomic.Uint64
}

func NewActionIDGenerator() *ActionIDGenerator {
	return &ActionIDGenerator{prefix: newUUID()}
}

// Generate returns the next action id.
func (g *ActionIDGenerator) Generate() string {
	n := g.counter.Add(1)
	return g.prefix + "-" + strconv.FormatUint(n, 10)
}

// Prefix returns the per-generator part shared by every issued id.
func (g *ActionIDGenerator) Prefix() string {
	return g.prefix
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
