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

// CreateRestaurantRequest represents the request body for creating a restaurant.
type CreateRestaurantRequest struct {
	OwnerID     string   `json:"owner_id" validate:"required"`
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Cuisines    []string `json:"cuisines"`
	Phone       string   `json:"phone" validate:"max=32"`
	Email       string   `json:"email" validate:"omitempty,email"`
	PriceRange  string   `json:"price_range" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	OfferText   string   `json:"offer_text" validate:"max=200"`
	ThemeID     string   `json:"theme_id"`
}

// UpdateRestaurantRequest contains the fields that can be updated on a restaurant.
type UpdateRestaurantRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Cuisines    *[]string `json:"cuisines,omitempty"`
	Phone       *string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`
	PriceRange  *string   `json:"price_range,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Rating      *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	OfferText   *string   `json:"offer_text,omitempty" validate:"omitempty,max=200"`
	ThemeID     *string   `json:"theme_id,omitempty"`
}

// handleCreateRestaurant creates a new restaurant profile.
func (s *Server) handleCreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRestaurantRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	restaurantID, err := id.Generate("rest")
	if err != nil {
		s.logger.Error("Failed to generate restaurant ID", "error", err)
		response.InternalError(w, "Failed to create restaurant", s.logger)
		return
	}

	now := time.Now()
	restaurant := &domain.Restaurant{
		ID:          restaurantID,
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Cuisines:    req.Cuisines,
		Phone:       req.Phone,
		Email:       req.Email,
		PriceRange:  req.PriceRange,
		OfferText:   req.OfferText,
		ThemeID:     req.ThemeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateRestaurant(ctx, restaurant); err != nil {
		s.logger.Error("Failed to create restaurant", "error", err, "owner_id", req.OwnerID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, restaurant, s.logger)
}

// handleListRestaurants returns all restaurants owned by the given account.
func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		response.BadRequest(w, "Owner ID is required", s.logger)
		return
	}

	restaurants, err := s.store.ListRestaurantsByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list restaurants", "error", err, "owner_id", ownerID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, restaurants, s.logger)
}

// handleGetRestaurant returns a single restaurant by ID.
func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	restaurantID := chi.URLParam(r, "id")

	restaurant, err := s.store.GetRestaurant(ctx, restaurantID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, restaurant, s.logger)
}

// handleUpdateRestaurant applies a partial update to a restaurant.
func (s *Server) handleUpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	restaurantID := chi.URLParam(r, "id")

	var req UpdateRestaurantRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	restaurant, err := s.store.GetRestaurant(ctx, restaurantID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Cuisines != nil {
		restaurant.Cuisines = *req.Cuisines
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
	}
	if req.Email != nil {
		restaurant.Email = *req.Email
	}
	if req.PriceRange != nil {
		restaurant.PriceRange = *req.PriceRange
	}
	if req.Rating != nil {
		restaurant.Rating = *req.Rating
	}
	if req.OfferText != nil {
		restaurant.OfferText = *req.OfferText
	}
	if req.ThemeID != nil {
		restaurant.ThemeID = *req.ThemeID
	}
	restaurant.Touch()

	if err := s.store.UpdateRestaurant(ctx, restaurant); err != nil {
		s.logger.Error("Failed to update restaurant", "error", err, "id", restaurantID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, restaurant, s.logger)
}

// handleDeleteRestaurant removes a restaurant and, via schema cascades,
// everything it owns.
func (s *Server) handleDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	restaurantID := chi.URLParam(r, "id")

	if err := s.store.DeleteRestaurant(ctx, restaurantID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
