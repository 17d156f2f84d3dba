package service

import (
	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
)

type ClientServices struct {
	Reconciler *ClientSettingsReconciler
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Reconciler: NewClientSettingsReconciler(serverAdapter, localStore.DraftRepository, cfg, logger),
	}
}

var _ SettingsReconciler = (*ClientSettingsReconciler)(nil)
