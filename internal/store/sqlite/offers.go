package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const offerColumns = `id, restaurant_id, title, description, active, valid_until, created_at`

// scanOffer scans a row into a domain.Offer.
func scanOffer(scanner interface{ Scan(dest ...any) error }) (*domain.Offer, error) {
	var o domain.Offer
	var active int
	var validUntil sql.NullString
	var createdAt string

	err := scanner.Scan(
		&o.ID,
		&o.RestaurantID,
		&o.Title,
		&o.Description,
		&active,
		&validUntil,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	o.Active = active != 0

	o.ValidUntil, err = parseNullableTime(validUntil)
	if err != nil {
		return nil, err
	}
	o.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOffer inserts a new offer.
func (s *Store) CreateOffer(ctx context.Context, o *domain.Offer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO offers (id, restaurant_id, title, description, active, valid_until, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID,
		o.RestaurantID,
		o.Title,
		o.Description,
		boolInt(o.Active),
		nullTimeString(o.ValidUntil),
		formatTime(o.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetOffer retrieves an offer by ID.
func (s *Store) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = ?`, id)

	o, err := scanOffer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListOffers returns every offer of a restaurant, newest first.
// This is the admin view; inactive offers are included.
func (s *Store) ListOffers(ctx context.Context, restaurantID string) ([]*domain.Offer, error) {
	return s.listOffers(ctx,
		`SELECT `+offerColumns+` FROM offers
		 WHERE restaurant_id = ? ORDER BY created_at DESC`, restaurantID)
}

// ListActiveOffers returns only publicly visible offers, newest first.
// The active predicate is part of the query, not a post-filter.
func (s *Store) ListActiveOffers(ctx context.Context, restaurantID string) ([]*domain.Offer, error) {
	return s.listOffers(ctx,
		`SELECT `+offerColumns+` FROM offers
		 WHERE restaurant_id = ? AND active = 1 ORDER BY created_at DESC`, restaurantID)
}

func (s *Store) listOffers(ctx context.Context, query, restaurantID string) ([]*domain.Offer, error) {
	rows, err := s.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// UpdateOffer updates all mutable fields of an offer.
func (s *Store) UpdateOffer(ctx context.Context, o *domain.Offer) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE offers SET title = ?, description = ?, active = ?, valid_until = ?
		WHERE id = ?`,
		o.Title,
		o.Description,
		boolInt(o.Active),
		nullTimeString(o.ValidUntil),
		o.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrOfferNotFound
	}
	return nil
}

// DeleteOffer removes an offer.
func (s *Store) DeleteOffer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrOfferNotFound
	}
	return nil
}
