package service

import (
	"github.com/MKhiriev/go-poker-client/internal/adapter"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/utils"
)

// ClientServices bundles the session services around one table store.
type ClientServices struct {
	Store        *TableStore
	Reconciler   Reconciler
	Submitter    Submitter
	Bootstrapper Bootstrapper
}

// NewClientServices wires the services for a single session: one store, its
// reconciler, a submitter writing to sender and a bootstrapper calling
// tableAdapter.
func NewClientServices(tableAdapter adapter.TableAdapter, sender ActionSender, log *logger.Logger) *ClientServices {
	store := NewTableStore()

	return &ClientServices{
		Store:        store,
		Reconciler:   NewReconciler(store, log),
		Submitter:    NewSubmitter(store, sender, utils.NewActionIDGenerator(), log),
		Bootstrapper: NewBootstrapper(tableAdapter, log),
	}
}
