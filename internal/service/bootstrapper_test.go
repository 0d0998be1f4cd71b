package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-poker-client/internal/adapter"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/mock"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seat(n int) *int { return &n }

func TestBootstrapper_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tables := mock.NewMockTableAdapter(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		tables.EXPECT().CreateTable(ctx).Return(models.CreateTableResponse{TableID: "t1"}, nil),
		tables.EXPECT().JoinTable(ctx, "t1").Return(models.JoinTableResponse{PlayerID: "p1", Seat: seat(1)}, nil),
		tables.EXPECT().StartHand(ctx, "t1").Return(models.StartHandResponse{HandID: "h_00001"}, nil),
	)

	got, err := NewBootstrapper(tables, logger.Nop()).Bootstrap(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.BootstrapResult{
		Identity: models.SessionIdentity{TableID: "t1", PlayerID: "p1", Seat: 1},
		HandID:   "h_00001",
	}, got)
}

func TestBootstrapper_StepFailures(t *testing.T) {
	rejected := &adapter.RejectedError{StatusCode: 409, Body: "table full"}
	unreachable := errors.Join(adapter.ErrUnreachable, errors.New("connection refused"))
	malformed := errors.Join(adapter.ErrMalformedResponse, errors.New("missing hand_id"))

	tests := []struct {
		name     string
		setup    func(tables *mock.MockTableAdapter)
		wantStep BootstrapStep
		wantKind error
		wantErr  error
	}{
		{
			name: "create unreachable",
			setup: func(tables *mock.MockTableAdapter) {
				tables.EXPECT().CreateTable(gomock.Any()).Return(models.CreateTableResponse{}, unreachable)
			},
			wantStep: StepCreateTable,
			wantKind: ErrUnreachable,
			wantErr:  adapter.ErrUnreachable,
		},
		{
			name: "join rejected",
			setup: func(tables *mock.MockTableAdapter) {
				tables.EXPECT().CreateTable(gomock.Any()).Return(models.CreateTableResponse{TableID: "t1"}, nil)
				tables.EXPECT().JoinTable(gomock.Any(), "t1").Return(models.JoinTableResponse{}, rejected)
			},
			wantStep: StepJoinTable,
			wantKind: ErrRejected,
			wantErr:  adapter.ErrRejected,
		},
		{
			name: "start malformed",
			setup: func(tables *mock.MockTableAdapter) {
				tables.EXPECT().CreateTable(gomock.Any()).Return(models.CreateTableResponse{TableID: "t1"}, nil)
				tables.EXPECT().JoinTable(gomock.Any(), "t1").Return(models.JoinTableResponse{PlayerID: "p1", Seat: seat(1)}, nil)
				tables.EXPECT().StartHand(gomock.Any(), "t1").Return(models.StartHandResponse{}, malformed)
			},
			wantStep: StepStartHand,
			wantKind: ErrMalformedResponse,
			wantErr:  adapter.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tables := mock.NewMockTableAdapter(ctrl)
			tt.setup(tables)

			got, err := NewBootstrapper(tables, logger.Nop()).Bootstrap(context.Background())

			assert.Equal(t, models.BootstrapResult{}, got)
			var bErr *BootstrapError
			require.ErrorAs(t, err, &bErr)
			assert.Equal(t, tt.wantStep, bErr.Step)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), string(tt.wantStep))
		})
	}
}

func TestBootstrapper_CancelledDuringJoinDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	tables := mock.NewMockTableAdapter(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tables.EXPECT().CreateTable(gomock.Any()).Return(models.CreateTableResponse{TableID: "t1"}, nil)
	tables.EXPECT().JoinTable(gomock.Any(), "t1").DoAndReturn(
		func(context.Context, string) (models.JoinTableResponse, error) {
			cancel()
			return models.JoinTableResponse{PlayerID: "p1", Seat: seat(1)}, nil
		})
	// StartHand must not be called.

	_, err := NewBootstrapper(tables, logger.Nop()).Bootstrap(ctx)

	var bErr *BootstrapError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, StepJoinTable, bErr.Step)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBootstrapper_CancelledRequestIsSessionClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	tables := mock.NewMockTableAdapter(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tables.EXPECT().CreateTable(gomock.Any()).Return(models.CreateTableResponse{},
		errors.Join(adapter.ErrUnreachable, context.Canceled))

	_, err := NewBootstrapper(tables, logger.Nop()).Bootstrap(ctx)

	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.NotErrorIs(t, err, ErrUnreachable)
}

func TestBootstrapper_FetchState(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tables := mock.NewMockTableAdapter(ctrl)
		want := models.SnapshotMessage{Table: models.TableSnapshot{HandID: "h_00003", Street: models.StreetTurn}}
		tables.EXPECT().FetchState(gomock.Any(), "t1").Return(want, nil)

		got, err := NewBootstrapper(tables, logger.Nop()).FetchState(context.Background(), "t1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tables := mock.NewMockTableAdapter(ctrl)
		tables.EXPECT().FetchState(gomock.Any(), "t9").
			Return(models.SnapshotMessage{}, &adapter.RejectedError{StatusCode: 404, Body: "table not found"})

		_, err := NewBootstrapper(tables, logger.Nop()).FetchState(context.Background(), "t9")

		var bErr *BootstrapError
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, StepFetchState, bErr.Step)
		assert.ErrorIs(t, err, ErrRejected)
	})
}
