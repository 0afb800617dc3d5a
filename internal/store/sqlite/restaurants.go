package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"errors"
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

// restaurantColumns is the ordered list of columns selected in restaurant queries.
// Must match the scan order in scanRestaurant.
const restaurantColumns = `id, owner_id, name, description, cuisines, phone, email,
	price_range, rating, offer_text, theme_id, created_at, updated_at`

// scanRestaurant scans a sql.Row (or sql.Rows via its Scan method) into a domain.Restaurant.
func scanRestaurant(scanner interface{ Scan(dest ...any) error }) (*domain.Restaurant, error) {
	var r domain.Restaurant

	var (
		cuisines  string
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Name,
		&r.Description,
		&cuisines,
		&r.Phone,
		&r.Email,
		&r.PriceRange,
		&r.Rating,
		&r.OfferText,
		&r.ThemeID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(cuisines), &r.Cuisines); err != nil {
		return nil, err
	}

	r.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// marshalCuisines encodes the cuisine list for storage, never null.
func marshalCuisines(cuisines []string) (string, error) {
	if cuisines == nil {
		cuisines = []string{}
	}
	data, err := json.Marshal(cuisines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CreateRestaurant inserts a new restaurant.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	cuisines, err := marshalCuisines(r.Cuisines)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO restaurants (
			id, owner_id, name, description, cuisines, phone, email,
			price_range, rating, offer_text, theme_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.OwnerID,
		r.Name,
		r.Description,
		cuisines,
		r.Phone,
		r.Email,
		r.PriceRange,
		r.Rating,
		r.OfferText,
		r.ThemeID,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetRestaurant retrieves a restaurant by ID.
// Returns store.ErrRestaurantNotFound if no restaurant exists.
func (s *Store) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = ?`, id)

	r, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRestaurantByName performs a case-insensitive partial name match.
// fragment comes from slug.Searchable, so it only contains [a-z0-9 ] and
// needs no LIKE escaping. When two names both match (colliding slugs) the
// earliest-created restaurant wins, deterministically.
func (s *Store) FindRestaurantByName(ctx context.Context, fragment string) (*domain.Restaurant, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants
		 WHERE name LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY created_at ASC
		 LIMIT 1`, fragment)

	r, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRestaurantsByOwner returns all restaurants owned by an account,
// oldest first.
func (s *Store) ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]*domain.Restaurant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants
		 WHERE owner_id = ? ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// UpdateRestaurant updates all mutable fields of a restaurant.
// Returns store.ErrRestaurantNotFound if the restaurant does not exist.
func (s *Store) UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	cuisines, err := marshalCuisines(r.Cuisines)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE restaurants SET
			name = ?, description = ?, cuisines = ?, phone = ?, email = ?,
			price_range = ?, rating = ?, offer_text = ?, theme_id = ?, updated_at = ?
		WHERE id = ?`,
		r.Name,
		r.Description,
		cuisines,
		r.Phone,
		r.Email,
		r.PriceRange,
		r.Rating,
		r.OfferText,
		r.ThemeID,
		formatTime(r.UpdatedAt),
		r.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrRestaurantNotFound
	}
	return nil
}

// DeleteRestaurant removes a restaurant. All dependent rows cascade.
func (s *Store) DeleteRestaurant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrRestaurantNotFound
	}
	return nil
}
