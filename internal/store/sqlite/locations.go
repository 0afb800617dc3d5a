package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const locationColumns = `id, restaurant_id, address, city, state, postal_code, landmark, maps_url, updated_at`

// scanLocation scans a row into a domain.Location.
func scanLocation(scanner interface{ Scan(dest ...any) error }) (*domain.Location, error) {
	var loc domain.Location
	var updatedAt string

	err := scanner.Scan(
		&loc.ID,
		&loc.RestaurantID,
		&loc.Address,
		&loc.City,
		&loc.State,
		&loc.PostalCode,
		&loc.Landmark,
		&loc.MapsURL,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	loc.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetLocation retrieves a restaurant's location record.
// Returns store.ErrLocationNotFound when the owner has never saved one.
func (s *Store) GetLocation(ctx context.Context, restaurantID string) (*domain.Location, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM restaurant_locations WHERE restaurant_id = ?`, restaurantID)

	loc, err := scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// UpsertLocation creates or replaces the location record for a restaurant.
// The restaurant_id UNIQUE constraint keeps this one-to-one.
func (s *Store) UpsertLocation(ctx context.Context, loc *domain.Location) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO restaurant_locations (
			id, restaurant_id, address, city, state, postal_code, landmark, maps_url, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			address = excluded.address,
			city = excluded.city,
			state = excluded.state,
			postal_code = excluded.postal_code,
			landmark = excluded.landmark,
			maps_url = excluded.maps_url,
			updated_at = excluded.updated_at`,
		loc.ID,
		loc.RestaurantID,
		loc.Address,
		loc.City,
		loc.State,
		loc.PostalCode,
		loc.Landmark,
		loc.MapsURL,
		formatTime(loc.UpdatedAt),
	)
	return err
}
