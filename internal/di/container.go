// Package di provides dependency injection configuration for the server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/config"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/di/providers"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/logger"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideProfileService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)
	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
