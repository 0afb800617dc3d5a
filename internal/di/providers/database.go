package providers

import (
	"github.com/samber/do/v2"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/config"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/logger"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := sqlite.Open(cfg.Database.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", cfg.Database.Path)

	return &StoreHandle{Store: db}, nil
}
