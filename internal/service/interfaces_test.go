package service

import (
	"testing"

	"github.com/MKhiriev/go-poker-client/internal/mock"
	"github.com/MKhiriev/go-poker-client/models"
	"go.uber.org/mock/gomock"
)

var _ Reconciler = (*mock.MockReconciler)(nil)

func TestMockReconciler_ApplySnapshotRecordsArgument(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mock.NewMockReconciler(ctrl)

	snapshot := models.SnapshotMessage{Table: models.TableSnapshot{HandID: "h_00001", Street: models.StreetPreflop}}
	rec.EXPECT().ApplySnapshot(snapshot)

	rec.ApplySnapshot(snapshot)
}
