package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/mock"
	"github.com/MKhiriev/go-poker-client/internal/transport"
	"github.com/MKhiriev/go-poker-client/internal/utils"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type submitterFixture struct {
	store  *TableStore
	rec    Reconciler
	sender *mock.MockActionSender
	ids    *mock.MockIDGenerator
	sub    Submitter
}

func newSubmitterFixture(t *testing.T) *submitterFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store, rec := newTestSession(t)
	sender := mock.NewMockActionSender(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	return &submitterFixture{
		store:  store,
		rec:    rec,
		sender: sender,
		ids:    ids,
		sub:    NewSubmitter(store, sender, ids, logger.Nop()),
	}
}

func TestSubmitter_SendsActionForCurrentHand(t *testing.T) {
	f := newSubmitterFixture(t)
	f.rec.Apply([]byte(snapshotH1))
	f.rec.Apply([]byte(promptCheckRaise))

	f.ids.EXPECT().Generate().Return("a-1")
	var sent []byte
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(payload []byte) error {
		sent = payload
		return nil
	})

	msg, err := f.sub.Submit(models.Check())
	require.NoError(t, err)

	assert.Equal(t, models.OutboundAction{
		Type:     "action",
		ActionID: "a-1",
		HandID:   "h_00001",
		Seat:     1,
		Action:   models.Check(),
	}, msg)
	assert.JSONEq(t, `{"type":"action","action_id":"a-1","hand_id":"h_00001","seat":1,"action":{"type":"check"}}`, string(sent))

	view := f.store.View()
	require.NotNil(t, view.LastSent)
	assert.Equal(t, "a-1", view.LastSent.ActionID)
	assert.Nil(t, view.LastDropped)
}

func TestSubmitter_RaiseCarriesAmount(t *testing.T) {
	f := newSubmitterFixture(t)
	f.rec.Apply([]byte(snapshotH1))
	f.rec.Apply([]byte(promptCheckRaise))

	f.ids.EXPECT().Generate().Return("a-7")
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(payload []byte) error {
		var got map[string]any
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, map[string]any{"type": "raise_to", "amount": float64(10)}, got["action"])
		return nil
	})

	_, err := f.sub.Submit(models.RaiseTo(10))
	require.NoError(t, err)
}

func TestSubmitter_HandIDReadAtSubmitTime(t *testing.T) {
	f := newSubmitterFixture(t)
	f.rec.Apply([]byte(snapshotH1))
	f.rec.Apply([]byte(promptCheckRaise))
	f.rec.Apply([]byte(handEnd))
	f.rec.Apply([]byte(snapshotH2))
	f.rec.Apply([]byte(`{"type":"prompt","legal_actions":[{"type":"call","amount":5}]}`))

	f.ids.EXPECT().Generate().Return("a-2")
	f.sender.EXPECT().Send(gomock.Any()).Return(nil)

	msg, err := f.sub.Submit(models.Call(5))
	require.NoError(t, err)
	assert.Equal(t, "h_00002", msg.HandID)
}

func TestSubmitter_ConsecutiveSubmitsHaveDistinctIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, rec := newTestSession(t)
	sender := mock.NewMockActionSender(ctrl)
	sub := NewSubmitter(store, sender, utils.NewActionIDGenerator(), logger.Nop())

	rec.Apply([]byte(snapshotH1))
	rec.Apply([]byte(promptCheckRaise))
	sender.EXPECT().Send(gomock.Any()).Return(nil).Times(2)

	first, err := sub.Submit(models.Check())
	require.NoError(t, err)
	second, err := sub.Submit(models.Check())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ActionID)
	assert.NotEqual(t, first.ActionID, second.ActionID)
}

func TestSubmitter_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(rec Reconciler)
		action  models.ActionDescriptor
		wantErr error
	}{
		{
			name: "connection closed",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
				rec.Apply([]byte(promptCheckRaise))
				rec.SetConnection(models.ConnectionClosed, errors.New("lost"))
			},
			action:  models.Check(),
			wantErr: ErrNotConnected,
		},
		{
			name: "still connecting",
			prepare: func(rec Reconciler) {
				rec.SetConnection(models.ConnectionConnecting, nil)
			},
			action:  models.Fold(),
			wantErr: ErrNotConnected,
		},
		{
			name:    "no snapshot",
			prepare: func(rec Reconciler) {},
			action:  models.Check(),
			wantErr: ErrNoSnapshot,
		},
		{
			name: "stale after reconnect",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
				rec.SetConnection(models.ConnectionClosed, nil)
				rec.SetConnection(models.ConnectionOpen, nil)
				rec.Apply([]byte(promptCheckRaise))
			},
			action:  models.Check(),
			wantErr: ErrSnapshotStale,
		},
		{
			name: "no prompt",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
			},
			action:  models.Check(),
			wantErr: ErrNotYourTurn,
		},
		{
			name: "foreign seat",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1Flop))
				rec.Apply([]byte(promptForeign))
			},
			action:  models.Fold(),
			wantErr: ErrNotYourTurn,
		},
		{
			name: "prompt cleared by hand end",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
				rec.Apply([]byte(promptCheckRaise))
				rec.Apply([]byte(handEnd))
			},
			action:  models.Check(),
			wantErr: ErrNotYourTurn,
		},
		{
			name: "invalid descriptor",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
				rec.Apply([]byte(promptCheckRaise))
			},
			action:  models.ActionDescriptor{Type: "all_in"},
			wantErr: ErrInvalidAction,
		},
		{
			name: "negative amount",
			prepare: func(rec Reconciler) {
				rec.Apply([]byte(snapshotH1))
				rec.Apply([]byte(promptCheckRaise))
			},
			action:  models.RaiseTo(-1),
			wantErr: ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT calls: any Send or Generate fails the test
			f := newSubmitterFixture(t)
			tt.prepare(f.rec)

			msg, err := f.sub.Submit(tt.action)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.OutboundAction{}, msg)

			view := f.store.View()
			require.NotNil(t, view.LastDropped)
			assert.ErrorIs(t, view.LastDropped.Err, tt.wantErr)
			assert.Equal(t, tt.action.Type, view.LastDropped.Action.Type)
			assert.Nil(t, view.LastSent)
		})
	}
}

func TestSubmitter_SendFailures(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		wantErr error
	}{
		{name: "channel not open", sendErr: transport.ErrNotOpen, wantErr: ErrNotConnected},
		{name: "queue full", sendErr: transport.ErrSendQueueFull, wantErr: ErrSendFailed},
		{name: "other", sendErr: errors.New("boom"), wantErr: ErrSendFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubmitterFixture(t)
			f.rec.Apply([]byte(snapshotH1))
			f.rec.Apply([]byte(promptCheckRaise))

			f.ids.EXPECT().Generate().Return("a-1")
			f.sender.EXPECT().Send(gomock.Any()).Return(tt.sendErr)

			_, err := f.sub.Submit(models.Check())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.sendErr)
			view := f.store.View()
			require.NotNil(t, view.LastDropped)
			assert.Nil(t, view.LastSent)
			assert.True(t, view.Actionable, "a failed send does not consume the prompt")
		})
	}
}

func TestSubmitter_SentClearsPreviousDrop(t *testing.T) {
	f := newSubmitterFixture(t)
	f.rec.Apply([]byte(snapshotH1))

	_, err := f.sub.Submit(models.Check())
	require.ErrorIs(t, err, ErrNotYourTurn)
	require.NotNil(t, f.store.View().LastDropped)

	f.rec.Apply([]byte(promptCheckRaise))
	f.ids.EXPECT().Generate().Return("a-1")
	f.sender.EXPECT().Send(gomock.Any()).Return(nil)

	_, err = f.sub.Submit(models.Check())
	require.NoError(t, err)

	view := f.store.View()
	assert.Nil(t, view.LastDropped)
	assert.NotNil(t, view.LastSent)
}
