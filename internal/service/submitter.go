package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
)

type submitter struct {
	store  *TableStore
	sender ActionSender
	ids    IDGenerator

	logger *logger.Logger
}

// NewSubmitter returns a Submitter that reads identity and hand from store at
// call time and writes through sender.
func NewSubmitter(store *TableStore, sender ActionSender, ids IDGenerator, log *logger.Logger) Submitter {
	return &submitter{store: store, sender: sender, ids: ids, logger: log.WithComponent("submitter")}
}

func (s *submitter) Submit(action models.ActionDescriptor) (models.OutboundAction, error) {
	msg, err := s.submit(action)
	if err != nil {
		s.logger.Warn().Err(err).Str("action", action.Type.String()).Int64("amount", action.Amount).Msg("action dropped")
		s.store.recordDropped(action, err)
		return models.OutboundAction{}, err
	}

	s.logger.Info().
		Str("action_id", msg.ActionID).
		Str("hand_id", msg.HandID).
		Str("action", action.Type.String()).
		Int64("amount", action.Amount).
		Msg("action sent")
	s.store.recordSent(msg)
	return msg, nil
}

func (s *submitter) submit(action models.ActionDescriptor) (models.OutboundAction, error) {
	if err := action.Validate(); err != nil {
		return models.OutboundAction{}, fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}

	state := s.store.submissionState()
	switch {
	case state.connection != models.ConnectionOpen:
		return models.OutboundAction{}, fmt.Errorf("%w: connection is %s", ErrNotConnected, state.connection)
	case !state.hasSnap:
		return models.OutboundAction{}, ErrNoSnapshot
	case state.stale:
		return models.OutboundAction{}, ErrSnapshotStale
	case !state.actionable:
		return models.OutboundAction{}, ErrNotYourTurn
	}

	msg := models.OutboundAction{
		Type:     models.OutboundActionType,
		ActionID: s.ids.Generate(),
		HandID:   state.handID,
		Seat:     state.identity.Seat,
		Action:   action,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return models.OutboundAction{}, fmt.Errorf("%w: encode: %w", ErrInvalidAction, err)
	}

	if err = s.sender.Send(payload); err != nil {
		return models.OutboundAction{}, fmt.Errorf("%w: %w", mapSendError(err), err)
	}

	return msg, nil
}
