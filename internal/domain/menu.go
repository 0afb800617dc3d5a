package domain

import "time"

// MenuCategory groups menu items. Deleting a category cascades to its items
// (enforced by the store schema, not application code).
type MenuCategory struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// MenuItem is a single dish. IsSpecial marks it for the dedicated
// "Chef's Special" section on the public page; IsAvailable gates public
// visibility entirely.
type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url,omitempty"`
	Vegetarian   bool      `json:"vegetarian"`
	IsSpecial    bool      `json:"is_special"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}
