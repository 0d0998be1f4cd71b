// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-poker-client/models"
)

// maxNotices bounds the ring of malformed or unrecognised payloads kept for
// display.
const maxNotices = 8

// NoticeKind classifies an inbound payload the reconciler refused to apply.
type NoticeKind string

const (
	NoticeMalformed NoticeKind = "malformed"
	NoticeUnknown   NoticeKind = "unknown"
)

// Notice is one refused inbound payload, kept verbatim.
type Notice struct {
	Kind   NoticeKind
	Raw    string
	Reason string
}

// DroppedAction is a submission that never reached the transport queue.
type DroppedAction struct {
	Action models.ActionDescriptor
	Err    error
}

// View is a deep copy of the session state at one point in time. Views are
// never mutated by the store after they are handed out.
type View struct {
	Identity models.SessionIdentity

	// Snapshot is nil until the first snapshot has been applied.
	Snapshot *models.TableSnapshot
	// Prompt is the current legal action set, possibly for a foreign seat.
	Prompt *models.Prompt
	// Actionable is true only when Prompt may be acted on by the local seat.
	Actionable bool

	Results   *models.HandEndMessage
	LastError string
	Notices   []Notice

	Connection    models.ConnectionState
	ConnectionErr error
	// Stale is set while the snapshot may have missed updates: after the
	// connection was lost and until a fresh snapshot is applied.
	Stale bool

	LastSent    *models.OutboundAction
	LastDropped *DroppedAction

	// Version increases with every change.
	Version uint64
}

// TableStore is the local mirror of the table. The reconciler is its only
// writer for snapshot, prompt, results, notices and connection fields; the
// submitter writes only the sent/dropped records. All methods are safe for
// concurrent use.
type TableStore struct {
	mu sync.RWMutex

	identity    models.SessionIdentity
	identitySet bool

	snapshot *models.TableSnapshot
	prompt   *models.Prompt
	results  *models.HandEndMessage
	lastErr  string
	notices  []Notice

	connection    models.ConnectionState
	connectionErr error
	stale         bool

	lastSent    *models.OutboundAction
	lastDropped *DroppedAction

	version uint64
	updates chan struct{}
}

// NewTableStore returns an empty store in the unconnected state.
func NewTableStore() *TableStore {
	return &TableStore{
		connection: models.ConnectionUnconnected,
		updates:    make(chan struct{}, 1),
	}
}

// SetIdentity binds the store to the local player. The identity can be set
// only once.
func (s *TableStore) SetIdentity(identity models.SessionIdentity) error {
	s.mu.Lock()
	if s.identitySet {
		s.mu.Unlock()
		return ErrIdentityAlreadySet
	}
	s.identity = identity
	s.identitySet = true
	s.changed()
	s.mu.Unlock()

	s.notify()
	return nil
}

// Updates returns a channel that receives a value after every change. Bursts
// of changes are coalesced into one notification, so readers should call
// [TableStore.View] and not count notifications.
func (s *TableStore) Updates() <-chan struct{} {
	return s.updates
}

// View returns a deep copy of the current state.
func (s *TableStore) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Identity:      s.identity,
		Actionable:    s.actionableLocked(),
		LastError:     s.lastErr,
		Notices:       slices.Clone(s.notices),
		Connection:    s.connection,
		ConnectionErr: s.connectionErr,
		Stale:         s.stale,
		Version:       s.version,
	}
	if s.snapshot != nil {
		snap := s.snapshot.Clone()
		v.Snapshot = &snap
	}
	if s.prompt != nil {
		p := clonePrompt(*s.prompt)
		v.Prompt = &p
	}
	if s.results != nil {
		r := models.HandEndMessage{HandID: s.results.HandID, Results: slices.Clone(s.results.Results)}
		v.Results = &r
	}
	if s.lastSent != nil {
		sent := *s.lastSent
		v.LastSent = &sent
	}
	if s.lastDropped != nil {
		dropped := *s.lastDropped
		v.LastDropped = &dropped
	}
	return v
}

// update runs fn under the write lock, bumps the version and notifies.
func (s *TableStore) update(fn func()) {
	s.mu.Lock()
	fn()
	s.changed()
	s.mu.Unlock()

	s.notify()
}

func (s *TableStore) changed() {
	s.version++
}

func (s *TableStore) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// actionableLocked reports whether the local seat may act on the stored
// prompt. The prompt's to_act wins over the snapshot's when both are present.
func (s *TableStore) actionableLocked() bool {
	if s.prompt == nil || s.snapshot == nil || s.stale || !s.identitySet {
		return false
	}
	if s.connection != models.ConnectionOpen {
		return false
	}

	toAct := s.prompt.ToAct
	if toAct == nil {
		toAct = s.snapshot.ToAct
	}
	return toAct != nil && *toAct == s.identity.Seat
}

// submission is the read-only slice of state the submitter needs.
type submission struct {
	identity   models.SessionIdentity
	handID     string
	hasSnap    bool
	stale      bool
	connection models.ConnectionState
	actionable bool
}

func (s *TableStore) submissionState() submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub := submission{
		identity:   s.identity,
		hasSnap:    s.snapshot != nil,
		stale:      s.stale,
		connection: s.connection,
		actionable: s.actionableLocked(),
	}
	if s.snapshot != nil {
		sub.handID = s.snapshot.HandID
	}
	return sub
}

func (s *TableStore) recordSent(msg models.OutboundAction) {
	s.update(func() {
		s.lastSent = &msg
		s.lastDropped = nil
	})
}

func (s *TableStore) recordDropped(action models.ActionDescriptor, err error) {
	s.update(func() {
		s.lastDropped = &DroppedAction{Action: action, Err: err}
	})
}

func (s *TableStore) pushNoticeLocked(n Notice) {
	s.notices = append(s.notices, n)
	if len(s.notices) > maxNotices {
		s.notices = slices.Delete(s.notices, 0, len(s.notices)-maxNotices)
	}
}

func clonePrompt(p models.Prompt) models.Prompt {
	out := p
	out.LegalActions = slices.Clone(p.LegalActions)
	for i, a := range out.LegalActions {
		out.LegalActions[i].Min = cloneInt64(a.Min)
		out.LegalActions[i].Max = cloneInt64(a.Max)
	}
	if p.ToAct != nil {
		v := *p.ToAct
		out.ToAct = &v
	}
	out.Seq = cloneInt64(p.Seq)
	if p.Deadline != nil {
		v := *p.Deadline
		out.Deadline = &v
	}
	return out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
