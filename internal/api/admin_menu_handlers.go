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

// CreateCategoryRequest represents the request body for creating a menu category.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Description  string `json:"description" validate:"max=500"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// UpdateCategoryRequest contains the fields that can be updated on a category.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}

// CreateItemRequest represents the request body for creating a menu item.
type CreateItemRequest struct {
	CategoryID  string  `json:"category_id" validate:"required"`
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Vegetarian  bool    `json:"vegetarian"`
	IsSpecial   bool    `json:"is_special"`
	IsAvailable bool    `json:"is_available"`
}

// UpdateItemRequest contains the fields that can be updated on a menu item.
type UpdateItemRequest struct {
	CategoryID  *string  `json:"category_id,omitempty"`
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Vegetarian  *bool    `json:"vegetarian,omitempty"`
	IsSpecial   *bool    `json:"is_special,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// handleCreateCategory creates a new menu category.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	categoryID, err := id.Generate("cat")
	if err != nil {
		s.logger.Error("Failed to generate category ID", "error", err)
		response.InternalError(w, "Failed to create category", s.logger)
		return
	}

	category := &domain.MenuCategory{
		ID:           categoryID,
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateMenuCategory(ctx, category); err != nil {
		s.logger.Error("Failed to create category", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, category, s.logger)
}

// handleListCategories returns the restaurant's categories in display order.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	categories, err := s.store.ListMenuCategories(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, categories, s.logger)
}

// handleUpdateCategory applies a partial update to a category.
func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID := chi.URLParam(r, "id")

	var req UpdateCategoryRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	category, err := s.store.GetMenuCategory(ctx, categoryID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.store.UpdateMenuCategory(ctx, category); err != nil {
		s.logger.Error("Failed to update category", "error", err, "id", categoryID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, category, s.logger)
}

// handleDeleteCategory removes a category; its items go with it.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID := chi.URLParam(r, "id")

	if err := s.store.DeleteMenuCategory(ctx, categoryID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleCreateItem creates a new menu item.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	itemID, err := id.Generate("item")
	if err != nil {
		s.logger.Error("Failed to generate item ID", "error", err)
		response.InternalError(w, "Failed to create item", s.logger)
		return
	}

	item := &domain.MenuItem{
		ID:           itemID,
		RestaurantID: restaurant.ID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Vegetarian:   req.Vegetarian,
		IsSpecial:    req.IsSpecial,
		IsAvailable:  req.IsAvailable,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		s.logger.Error("Failed to create item", "error", err, "restaurant_id", restaurant.ID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, item, s.logger)
}

// handleListItems returns every menu item of the restaurant, including
// unavailable ones; only the public view filters those out.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurant, ok := s.requireRestaurant(w, r)
	if !ok {
		return
	}

	items, err := s.store.ListMenuItems(ctx, restaurant.ID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, items, s.logger)
}

// handleUpdateItem applies a partial update to a menu item.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var req UpdateItemRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	item, err := s.store.GetMenuItem(ctx, itemID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Vegetarian != nil {
		item.Vegetarian = *req.Vegetarian
	}
	if req.IsSpecial != nil {
		item.IsSpecial = *req.IsSpecial
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.store.UpdateMenuItem(ctx, item); err != nil {
		s.logger.Error("Failed to update item", "error", err, "id", itemID)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, item, s.logger)
}

// handleDeleteItem removes a menu item.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	if err := s.store.DeleteMenuItem(ctx, itemID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
