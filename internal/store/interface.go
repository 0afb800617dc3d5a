// Package store defines the persistence interface for the restaurant
// profile server. The public core only ever reads; the admin surface and
// the seeder are the writers.
package store

import (
	"context"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	// Lifecycle
	Close() error

	// Restaurants
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	// FindRestaurantByName performs a case-insensitive partial match of
	// fragment against restaurant names and returns the earliest-created
	// match. This is the slug-resolution lookup: fragment comes from
	// slug.Searchable, never from raw user input.
	FindRestaurantByName(ctx context.Context, fragment string) (*domain.Restaurant, error)
	ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id string) error

	// Location (one-to-one, absent until first write)
	GetLocation(ctx context.Context, restaurantID string) (*domain.Location, error)
	UpsertLocation(ctx context.Context, loc *domain.Location) error

	// Opening hours (zero or seven rows, ordered by weekday)
	ListOpeningHours(ctx context.Context, restaurantID string) ([]*domain.OpeningHours, error)
	// ReplaceOpeningHours writes a full week atomically. hours must contain
	// exactly seven rows covering weekdays 0-6; partial sets are rejected.
	ReplaceOpeningHours(ctx context.Context, restaurantID string, hours []*domain.OpeningHours) error

	// Features (one-to-one, absent until first write)
	GetFeatures(ctx context.Context, restaurantID string) (*domain.Features, error)
	UpsertFeatures(ctx context.Context, f *domain.Features) error

	// Menu categories (ordered by display_order)
	CreateMenuCategory(ctx context.Context, c *domain.MenuCategory) error
	GetMenuCategory(ctx context.Context, id string) (*domain.MenuCategory, error)
	ListMenuCategories(ctx context.Context, restaurantID string) ([]*domain.MenuCategory, error)
	UpdateMenuCategory(ctx context.Context, c *domain.MenuCategory) error
	DeleteMenuCategory(ctx context.Context, id string) error

	// Menu items (no ordering contract; consumers filter and search)
	CreateMenuItem(ctx context.Context, it *domain.MenuItem) error
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, it *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	// Gallery images (ordered by display_order)
	CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) error
	ListGalleryImages(ctx context.Context, restaurantID string) ([]*domain.GalleryImage, error)
	ReorderGalleryImages(ctx context.Context, restaurantID string, orderedIDs []string) error
	DeleteGalleryImage(ctx context.Context, id string) error

	// Offers. The active predicate is pushed into the fetch for the public
	// view; ListOffers (admin) returns everything, newest first.
	CreateOffer(ctx context.Context, o *domain.Offer) error
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	ListOffers(ctx context.Context, restaurantID string) ([]*domain.Offer, error)
	ListActiveOffers(ctx context.Context, restaurantID string) ([]*domain.Offer, error)
	UpdateOffer(ctx context.Context, o *domain.Offer) error
	DeleteOffer(ctx context.Context, id string) error
}
