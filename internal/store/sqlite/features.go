package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const featuresColumns = `id, restaurant_id, parking, wifi, air_conditioned, delivery,
	takeaway, pet_friendly, wheelchair, outdoor_seating, live_music`

// scanFeatures scans a row into a domain.Features.
func scanFeatures(scanner interface{ Scan(dest ...any) error }) (*domain.Features, error) {
	var f domain.Features
	var parking, wifi, ac, delivery, takeaway, pets, wheelchair, outdoor, music int

	err := scanner.Scan(
		&f.ID,
		&f.RestaurantID,
		&parking,
		&wifi,
		&ac,
		&delivery,
		&takeaway,
		&pets,
		&wheelchair,
		&outdoor,
		&music,
	)
	if err != nil {
		return nil, err
	}

	f.Parking = parking != 0
	f.WiFi = wifi != 0
	f.AirConditioned = ac != 0
	f.Delivery = delivery != 0
	f.Takeaway = takeaway != 0
	f.PetFriendly = pets != 0
	f.Wheelchair = wheelchair != 0
	f.OutdoorSeats = outdoor != 0
	f.LiveMusic = music != 0
	return &f, nil
}

// GetFeatures retrieves a restaurant's amenity record.
// Returns store.ErrFeaturesNotFound when the owner has never saved one.
func (s *Store) GetFeatures(ctx context.Context, restaurantID string) (*domain.Features, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+featuresColumns+` FROM restaurant_features WHERE restaurant_id = ?`, restaurantID)

	f, err := scanFeatures(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrFeaturesNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// UpsertFeatures creates or replaces the amenity record for a restaurant.
func (s *Store) UpsertFeatures(ctx context.Context, f *domain.Features) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant_features (
			id, restaurant_id, parking, wifi, air_conditioned, delivery,
			takeaway, pet_friendly, wheelchair, outdoor_seating, live_music
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			parking = excluded.parking,
			wifi = excluded.wifi,
			air_conditioned = excluded.air_conditioned,
			delivery = excluded.delivery,
			takeaway = excluded.takeaway,
			pet_friendly = excluded.pet_friendly,
			wheelchair = excluded.wheelchair,
			outdoor_seating = excluded.outdoor_seating,
			live_music = excluded.live_music`,
		f.ID,
		f.RestaurantID,
		boolInt(f.Parking),
		boolInt(f.WiFi),
		boolInt(f.AirConditioned),
		boolInt(f.Delivery),
		boolInt(f.Takeaway),
		boolInt(f.PetFriendly),
		boolInt(f.Wheelchair),
		boolInt(f.OutdoorSeats),
		boolInt(f.LiveMusic),
	)
	return err
}
