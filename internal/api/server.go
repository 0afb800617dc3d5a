// Package api provides the HTTP API server and handlers for the restaurant
// profile application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/http/response"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/page"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/ratelimit"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     store.Store
	profiles  *service.ProfileService
	validator *validation.Validator
	limiter   *ratelimit.KeyedRateLimiter
	pageCfg   page.Config
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st store.Store, profiles *service.ProfileService, validator *validation.Validator, limiter *ratelimit.KeyedRateLimiter, pageCfg page.Config, logger *slog.Logger) *Server {
	s := &Server{
		store:     st,
		profiles:  profiles,
		validator: validator,
		limiter:   limiter,
		pageCfg:   pageCfg,
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The public profile is meant to be embedded anywhere.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Public surface: slug resolution and the composed profile view.
		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(RateLimitMiddleware(s.limiter, s.logger))
			}
			r.Get("/restaurants/{slug}", s.handleGetPublicProfile)
		})

		r.Get("/themes", s.handleListThemes)

		// Admin surface: the writers behind the dashboard.
		r.Route("/admin", func(r chi.Router) {
			r.Route("/restaurants", func(r chi.Router) {
				r.Post("/", s.handleCreateRestaurant)
				r.Get("/", s.handleListRestaurants)
				r.Get("/{id}", s.handleGetRestaurant)
				r.Patch("/{id}", s.handleUpdateRestaurant)
				r.Delete("/{id}", s.handleDeleteRestaurant)

				r.Put("/{id}/location", s.handleUpsertLocation)
				r.Put("/{id}/hours", s.handleReplaceHours)
				r.Get("/{id}/hours", s.handleListHours)
				r.Put("/{id}/features", s.handleUpsertFeatures)

				r.Post("/{id}/categories", s.handleCreateCategory)
				r.Get("/{id}/categories", s.handleListCategories)

				r.Post("/{id}/items", s.handleCreateItem)
				r.Get("/{id}/items", s.handleListItems)

				r.Post("/{id}/gallery", s.handleCreateGalleryImage)
				r.Get("/{id}/gallery", s.handleListGallery)
				r.Put("/{id}/gallery/order", s.handleReorderGallery)

				r.Post("/{id}/offers", s.handleCreateOffer)
				r.Get("/{id}/offers", s.handleListOffers)
			})

			r.Patch("/categories/{id}", s.handleUpdateCategory)
			r.Delete("/categories/{id}", s.handleDeleteCategory)
			r.Patch("/items/{id}", s.handleUpdateItem)
			r.Delete("/items/{id}", s.handleDeleteItem)
			r.Delete("/gallery/{id}", s.handleDeleteGalleryImage)
			r.Patch("/offers/{id}", s.handleUpdateOffer)
			r.Delete("/offers/{id}", s.handleDeleteOffer)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
