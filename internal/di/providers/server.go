package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/api"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/config"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/logger"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/page"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	profileService := do.MustInvoke[*service.ProfileService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)

	pageCfg := page.Config{
		OffersInterval:  cfg.Carousel.OffersInterval,
		GalleryInterval: cfg.Carousel.GalleryInterval,
	}

	handler := api.NewServer(storeHandle.Store, profileService, validator, limiterHandle.KeyedRateLimiter, pageCfg, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
