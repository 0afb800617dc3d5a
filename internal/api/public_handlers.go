package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/http/response"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/page"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/theme"
)

// handleGetPublicProfile serves the composed public page for a slug. The
// whole load runs through a page session so one navigation gets one
// consistent snapshot: resolve, fetch everything or nothing, merge the
// theme, then apply any menu filter from the query string.
//
// Query parameters: category (a category id, "all", or "specials") and
// search (free text matched against item names and descriptions).
func (s *Server) handleGetPublicProfile(w http.ResponseWriter, r *http.Request) {
	rawSlug := chi.URLParam(r, "slug")
	if rawSlug == "" {
		response.BadRequest(w, "Restaurant slug is required", s.logger)
		return
	}

	sess := page.NewSession(s.profiles, s.logger, s.pageCfg)
	defer sess.Close()

	state := sess.Load(r.Context(), rawSlug)
	if state == page.StateReady {
		if category := r.URL.Query().Get("category"); category != "" {
			sess.SetCategory(category)
		}
		if search := r.URL.Query().Get("search"); search != "" {
			sess.SetSearch(search)
		}
	}

	view := sess.View()
	switch view.State {
	case page.StateReady:
		response.Success(w, view, s.logger)
	case page.StateNotFound:
		response.NotFound(w, view.Error.Message, s.logger)
	default:
		response.HandleError(w, view.Error, s.logger)
	}
}

// handleListThemes returns the theme catalog so the dashboard can render
// swatches.
func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, theme.Catalog, s.logger)
}
