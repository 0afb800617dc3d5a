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

// UpsertLocationRequest represents the location form payload.
type UpsertLocationRequest struct {
	Address    string `json:"address" validate:"required,max=300"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
	Landmark   string `json:"landmark" validate:"max=200"`
	MapsURL    string `json:"maps_url" validate:"omitempty,url"`
}

// HoursEntry is one weekday row of the hours form.
type HoursEntry struct {
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Closed    bool   `json:"closed"`
}

// ReplaceHoursRequest carries the full week. The store rejects anything
// other than exactly seven rows covering each weekday once.
type ReplaceHoursRequest struct {
	Hours []HoursEntry `json:"hours" validate:"required,len=7,dive"`
}

// UpsertFeaturesRequest represents the amenities form payload.
type UpsertFeaturesRequest struct {
	Parking        bool `json:"parking"`
	WiFi           bool `json:"wifi"`
	AirConditioned bool `json:"air_conditioned"`
	Delivery       bool `json:"delivery"`
	Takeaway       bool `json:"takeaway"`
	PetFriendly    bool `json:"pet_friendly"`
	Wheelchair     bool `json:"wheelchair"`
	OutdoorSeats   bool `json:"outdoor_seating"`
	LiveMusic      bool `json:"live_music"`
}

// requireRestaurant loads the path restaurant and writes the error
// response itself when it is missing.
func (s *Server) requireRestaurant(w http.ResponseWriter, r *http.Request) (*domain.Restaurant, bool) {
	restaurant, err := s.store.GetRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return nil, false
	}
	return restaurant, true
}

// handleUpsertLocation writes the one-to-one location record.
func (s *Server) handleUpsertLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req UpsertLocationRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	locationID, err := id.Generate("loc")
	if err != nil {
		s.logger.Error("Failed to generate location ID", "error", err)
		response.InternalError(w, "Failed to save location", s.logger)
		return
	}

	location := &domain.Location{
		ID:           locationID,
		RestaurantID: restaurant.ID,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Landmark:     req.Landmark,
		MapsURL:      req.MapsURL,
		UpdatedAt:    time.Now(),
	}

	if err := s.store.UpsertLocation(ctx, location); err != nil {
		s.logger.Error("Failed to upsert location", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	saved, err := s.store.GetLocation(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, saved, s.logger)
}

// handleReplaceHours replaces the restaurant's full weekly schedule.
func (s *Server) handleReplaceHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req ReplaceHoursRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	hours := make([]*domain.OpeningHours, 0, len(req.Hours))
	for _, entry := range req.Hours {
		rowID, err := id.Generate("hrs")
		if err != nil {
			s.logger.Error("Failed to generate hours ID", "error", err)
			response.InternalError(w, "Failed to save hours", s.logger)
			return
		}
		hours = append(hours, &domain.OpeningHours{
			ID:           rowID,
			RestaurantID: restaurant.ID,
			Weekday:      entry.Weekday,
			OpenTime:     entry.OpenTime,
			CloseTime:    entry.CloseTime,
			Closed:       entry.Closed,
		})
	}

	if err := s.store.ReplaceOpeningHours(ctx, restaurant.ID, hours); err != nil {
		s.logger.Error("Failed to replace hours", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	saved, err := s.store.ListOpeningHours(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, saved, s.logger)
}

// handleListHours returns the weekly schedule, empty when unset.
func (s *Server) handleListHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	hours, err := s.store.ListOpeningHours(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, hours, s.logger)
}

// handleUpsertFeatures writes the one-to-one amenities record.
func (s *Server) handleUpsertFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req UpsertFeaturesRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	featuresID, err := id.Generate("feat")
	if err != nil {
		s.logger.Error("Failed to generate features ID", "error", err)
		response.InternalError(w, "Failed to save features", s.logger)
		return
	}

	features := &domain.Features{
		ID:             featuresID,
		RestaurantID:   restaurant.ID,
		Parking:        req.Parking,
		WiFi:           req.WiFi,
		AirConditioned: req.AirConditioned,
		Delivery:       req.Delivery,
		Takeaway:       req.Takeaway,
		PetFriendly:    req.PetFriendly,
		Wheelchair:     req.Wheelchair,
		OutdoorSeats:   req.OutdoorSeats,
		LiveMusic:      req.LiveMusic,
	}

	if err := s.store.UpsertFeatures(ctx, features); err != nil {
		s.logger.Error("Failed to upsert features", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	saved, err := s.store.GetFeatures(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, saved, s.logger)
}
