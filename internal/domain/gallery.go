package domain

import "time"

// GalleryImage is one slide of the public photo carousel.
// Ordering is explicit via DisplayOrder; the store returns images sorted.
type GalleryImage struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
