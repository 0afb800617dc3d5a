// Package domain contains the core business entities for the restaurant profile server.
package domain

import "time"

// Restaurant is the root profile entity. Each restaurant is owned by exactly
// one dashboard account; the public URL slug is derived from Name at
// resolution time and never stored.
type Restaurant struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cuisines    []string  `json:"cuisines,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	PriceRange  string    `json:"price_range,omitempty"` // "$", "$$", "$$$", "$$$$"
	Rating      float64   `json:"rating,omitempty"`
	OfferText   string    `json:"offer_text,omitempty"` // Banner line shown on the public hero
	ThemeID     string    `json:"theme_id,omitempty"`   // References the static theme catalog
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (r *Restaurant) Touch() {
	r.UpdatedAt = time.Now()
}

// Location is the one-to-one address record for a restaurant.
// Absent until the owner first saves the location form.
type Location struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Address      string    `json:"address"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"`
	Landmark     string    `json:"landmark,omitempty"`
	MapsURL      string    `json:"maps_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OpeningHours is one weekday row of a restaurant's schedule.
// A restaurant has either zero rows (hours unset) or exactly seven,
// one per Weekday 0–6 (Sunday = 0). Partial sets never exist; writes
// replace all seven rows in one transaction.
type OpeningHours struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Weekday      int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	OpenTime     string `json:"open_time,omitempty"`  // "09:00", empty when Closed
	CloseTime    string `json:"close_time,omitempty"` // "22:30", empty when Closed
	Closed       bool   `json:"closed"`
}

// Features is the one-to-one amenity record for a restaurant.
// Absent until the owner first saves the features form.
type Features struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	Parking        bool   `json:"parking"`
	WiFi           bool   `json:"wifi"`
	AirConditioned bool   `json:"air_conditioned"`
	Delivery       bool   `json:"delivery"`
	Takeaway       bool   `json:"takeaway"`
	PetFriendly    bool   `json:"pet_friendly"`
	Wheelchair     bool   `json:"wheelchair"`
	OutdoorSeats   bool   `json:"outdoor_seating"`
	LiveMusic      bool   `json:"live_music"`
}
