package api

import (
	"encoding/json/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/http/response"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/id"
)

// CreateOfferRequest represents the request body for creating an offer.
type CreateOfferRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=500"`
	Active      bool       `json:"active"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
}

// UpdateOfferRequest contains the fields that can be updated on an offer.
type UpdateOfferRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Active      *bool      `json:"active,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
}

// handleCreateOffer creates a new offer.
func (s *Server) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req CreateOfferRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	offerID, err := id.Generate("offer")
	if err != nil {
		s.logger.Error("Failed to generate offer ID", "error", err)
		response.InternalError(w, "Failed to create offer", s.logger)
		return
	}

	offer := &domain.Offer{
		ID:           offerID,
		RestaurantID: restaurant.ID,
		Title:        req.Title,
		Description:  req.Description,
		Active:       req.Active,
		ValidUntil:   req.ValidUntil,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateOffer(ctx, offer); err != nil {
		s.logger.Error("Failed to create offer", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, offer, s.logger)
}

// handleListOffers returns every offer including paused ones; the public
// view only ever sees active offers.
func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	offers, err := s.store.ListOffers(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, offers, s.logger)
}

// handleUpdateOffer applies a partial update to an offer.
func (s *Server) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offerID := chi.URLParam(r, "id")

	var req UpdateOfferRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	offer, err := s.store.GetOffer(ctx, offerID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Active != nil {
		offer.Active = *req.Active
	}
	if req.ValidUntil != nil {
		offer.ValidUntil = req.ValidUntil
	}

	if err := s.store.UpdateOffer(ctx, offer); err != nil {
		s.logger.Error("Failed to update offer", "error", err, "id", offerID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, offer, s.logger)
}

// handleDeleteOffer removes an offer.
func (s *Server) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offerID := chi.URLParam(r, "id")

	if err := s.store.DeleteOffer(ctx, offerID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
