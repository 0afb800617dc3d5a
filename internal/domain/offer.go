package domain

import "time"

// Offer is a promotion shown in the public offers carousel.
// Only active offers are ever fetched for the public view; the admin
// dashboard lists all of them. Public ordering is newest-first.
type Offer struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Active       bool       `json:"active"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
