package service

import (
	"bytes"
	"slices"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
)

type reconciler struct {
	store  *TableStore
	logger *logger.Logger
}

// NewReconciler returns the single writer of store. Its methods must be
// called from one goroutine, in the order events arrived.
func NewReconciler(store *TableStore, log *logger.Logger) Reconciler {
	return &reconciler{store: store, logger: log.WithComponent("reconciler")}
}

func (r *reconciler) Apply(raw []byte) models.InboundMessage {
	msg, err := models.DecodeInbound(raw)
	if err != nil {
		r.logger.Warn().Err(err).Bytes("payload", raw).Msg("ignoring malformed message")
		r.store.update(func() {
			r.store.pushNoticeLocked(Notice{Kind: NoticeMalformed, Raw: string(raw), Reason: err.Error()})
		})
		return nil
	}

	switch m := msg.(type) {
	case models.SnapshotMessage:
		r.applySnapshot(m)
	case models.PromptMessage:
		r.applyPrompt(m)
	case models.HandEndMessage:
		r.applyHandEnd(m)
	case models.ErrorMessage:
		r.logger.Info().Str("message", m.Message).Msg("server reported error")
		r.store.update(func() {
			r.store.lastErr = m.Message
		})
	case models.UnknownMessage:
		r.logger.Debug().Str("type", m.Type).Bytes("payload", m.Raw).Msg("ignoring unknown message type")
		r.store.update(func() {
			r.store.pushNoticeLocked(Notice{Kind: NoticeUnknown, Raw: string(m.Raw), Reason: "unknown type " + m.Type})
		})
	}

	return msg
}

func (r *reconciler) ApplySnapshot(m models.SnapshotMessage) {
	if err := m.Table.Validate(); err != nil {
		r.logger.Warn().Err(err).Msg("ignoring invalid snapshot")
		r.store.update(func() {
			r.store.pushNoticeLocked(Notice{Kind: NoticeMalformed, Reason: err.Error()})
		})
		return
	}
	r.applySnapshot(m)
}

func (r *reconciler) applySnapshot(m models.SnapshotMessage) {
	next := m.Table.Clone()

	r.store.update(func() {
		if prev := r.store.snapshot; prev != nil && prev.HandID == next.HandID {
			if len(next.Board) < len(prev.Board) || !slices.Equal(prev.Board, next.Board[:len(prev.Board)]) {
				r.logger.Warn().
					Str("hand_id", next.HandID).
					Strs("previous", prev.Board).
					Strs("current", next.Board).
					Msg("board is not append-only within hand")
			}
		}

		r.store.snapshot = &next
		r.store.prompt = nil
		r.store.stale = false
	})

	r.logger.Debug().Str("hand_id", next.HandID).Str("street", string(next.Street)).Msg("snapshot applied")
}

func (r *reconciler) applyPrompt(m models.PromptMessage) {
	p := clonePrompt(m.Prompt)

	var actionable bool
	r.store.update(func() {
		r.store.prompt = &p
		actionable = r.store.actionableLocked()
	})

	if !actionable {
		ev := r.logger.Debug().Int("actions", len(p.LegalActions))
		if p.ToAct != nil {
			ev = ev.Int("to_act", *p.ToAct)
		}
		ev.Msg("prompt stored for display only")
		return
	}
	r.logger.Debug().Int("actions", len(p.LegalActions)).Msg("prompt applied")
}

func (r *reconciler) applyHandEnd(m models.HandEndMessage) {
	results := models.HandEndMessage{HandID: m.HandID, Results: bytes.Clone(m.Results)}

	r.store.update(func() {
		if snap := r.store.snapshot; snap != nil && m.HandID != "" && m.HandID != snap.HandID {
			r.logger.Warn().Str("hand_id", m.HandID).Str("snapshot_hand_id", snap.HandID).Msg("hand_end for a different hand")
		}
		r.store.prompt = nil
		r.store.results = &results
	})

	r.logger.Info().Str("hand_id", m.HandID).RawJSON("results", rawOrNull(results.Results)).Msg("hand ended")
}

func (r *reconciler) MarkStale() {
	r.store.update(func() {
		r.store.stale = true
		r.store.prompt = nil
	})
}

func (r *reconciler) SetConnection(state models.ConnectionState, err error) {
	r.store.update(func() {
		r.store.connection = state
		r.store.connectionErr = err
		if state == models.ConnectionClosed {
			r.store.stale = true
			r.store.prompt = nil
		}
	})
}

func rawOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
