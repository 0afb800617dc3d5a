package providers

import (
	"github.com/samber/do/v2"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/config"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/logger"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/ratelimit"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// RateLimiterHandle wraps the keyed rate limiter with Shutdownable so its
// sweep goroutine stops with the container.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideRateLimiter provides the per-client limiter for the public endpoint.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &RateLimiterHandle{
		KeyedRateLimiter: ratelimit.New(cfg.Public.RateLimit, cfg.Public.RateBurst),
	}, nil
}

// ProvideProfileService provides the slug resolver and aggregate fetcher.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewProfileService(storeHandle.Store, log.Logger, cfg.Public.FetchTimeout), nil
}
