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

// CreateGalleryImageRequest represents the request body for adding a gallery image.
type CreateGalleryImageRequest struct {
	ImageURL     string `json:"image_url" validate:"required,url"`
	Caption      string `json:"caption" validate:"max=200"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// ReorderGalleryRequest carries the complete new slide order.
type ReorderGalleryRequest struct {
	ImageIDs []string `json:"image_ids" validate:"required,min=1,dive,required"`
}

// handleCreateGalleryImage adds one slide to the restaurant's carousel.
func (s *Server) handleCreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req CreateGalleryImageRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	imageID, err := id.Generate("img")
	if err != nil {
		s.logger.Error("Failed to generate image ID", "error", err)
		response.InternalError(w, "Failed to add image", s.logger)
		return
	}

	image := &domain.GalleryImage{
		ID:           imageID,
		RestaurantID: restaurant.ID,
		ImageURL:     req.ImageURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateGalleryImage(ctx, image); err != nil {
		s.logger.Error("Failed to create gallery image", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, image, s.logger)
}

// handleListGallery returns the restaurant's images in display order.
func (s *Server) handleListGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	images, err := s.store.ListGalleryImages(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, images, s.logger)
}

// handleReorderGallery rewrites display order from the given id sequence.
func (s *Server) handleReorderGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req ReorderGalleryRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.store.ReorderGalleryImages(ctx, restaurant.ID, req.ImageIDs); err != nil {
		s.logger.Error("Failed to reorder gallery", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	images, err := s.store.ListGalleryImages(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, images, s.logger)
}

// handleDeleteGalleryImage removes one slide.
func (s *Server) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imageID := chi.URLParam(r, "id")

	if err := s.store.DeleteGalleryImage(ctx, imageID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
