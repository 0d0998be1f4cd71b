package service

import (
	"context"

	"github.com/MKhiriev/go-poker-client/internal/adapter"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
)

type bootstrapper struct {
	adapter adapter.TableAdapter

	logger *logger.Logger
}

// NewBootstrapper returns a Bootstrapper calling tableAdapter.
func NewBootstrapper(tableAdapter adapter.TableAdapter, log *logger.Logger) Bootstrapper {
	return &bootstrapper{adapter: tableAdapter, logger: log.WithComponent("bootstrap")}
}

func (b *bootstrapper) Bootstrap(ctx context.Context) (models.BootstrapResult, error) {
	created, err := b.adapter.CreateTable(ctx)
	if err = b.check(ctx, StepCreateTable, err); err != nil {
		return models.BootstrapResult{}, err
	}
	b.logger.Info().Str("table_id", created.TableID).Msg("table created")

	joined, err := b.adapter.JoinTable(ctx, created.TableID)
	if err = b.check(ctx, StepJoinTable, err); err != nil {
		return models.BootstrapResult{}, err
	}
	identity := models.SessionIdentity{
		TableID:  created.TableID,
		PlayerID: joined.PlayerID,
		Seat:     *joined.Seat,
	}
	b.logger.Info().Str("player_id", identity.PlayerID).Int("seat", identity.Seat).Msg("joined table")

	started, err := b.adapter.StartHand(ctx, created.TableID)
	if err = b.check(ctx, StepStartHand, err); err != nil {
		return models.BootstrapResult{}, err
	}
	b.logger.Info().Str("hand_id", started.HandID).Msg("hand started")

	return models.BootstrapResult{Identity: identity, HandID: started.HandID}, nil
}

func (b *bootstrapper) FetchState(ctx context.Context, tableID string) (models.SnapshotMessage, error) {
	snapshot, err := b.adapter.FetchState(ctx, tableID)
	if err = b.check(ctx, StepFetchState, err); err != nil {
		return models.SnapshotMessage{}, err
	}
	return snapshot, nil
}

// check wraps a failed step into a *BootstrapError. A result that arrives
// after ctx was cancelled is discarded even when the call succeeded.
func (b *bootstrapper) check(ctx context.Context, step BootstrapStep, err error) error {
	if err == nil && ctx.Err() == nil {
		return nil
	}
	if err == nil {
		err = ctx.Err()
	}

	bErr := &BootstrapError{Step: step, Kind: classifyAdapterError(ctx, err), Err: err}
	b.logger.Error().Err(bErr).Str("step", string(step)).Msg("bootstrap step failed")
	return bErr
}
