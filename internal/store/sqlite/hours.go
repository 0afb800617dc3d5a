package sqlite

import (
	"context"
	"fmt"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const hoursColumns = `id, restaurant_id, weekday, open_time, close_time, closed`

// scanOpeningHours scans a row into a domain.OpeningHours.
func scanOpeningHours(scanner interface{ Scan(dest ...any) error }) (*domain.OpeningHours, error) {
	var h domain.OpeningHours
	var closed int

	err := scanner.Scan(
		&h.ID,
		&h.RestaurantID,
		&h.Weekday,
		&h.OpenTime,
		&h.CloseTime,
		&closed,
	)
	if err != nil {
		return nil, err
	}

	h.Closed = closed != 0
	return &h, nil
}

// ListOpeningHours returns a restaurant's schedule ordered by weekday.
// The result has zero rows (hours unset) or exactly seven.
func (s *Store) ListOpeningHours(ctx context.Context, restaurantID string) ([]*domain.OpeningHours, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+hoursColumns+` FROM opening_hours
		 WHERE restaurant_id = ? ORDER BY weekday ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []*domain.OpeningHours
	for rows.Next() {
		h, err := scanOpeningHours(rows)
		if err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

// ReplaceOpeningHours writes a full week atomically: delete the old rows,
// insert the new seven, commit. Readers can only ever observe zero or
// seven rows, which is the invariant the public page depends on.
func (s *Store) ReplaceOpeningHours(ctx context.Context, restaurantID string, hours []*domain.OpeningHours) error {
	if len(hours) != 7 {
		return store.ErrInvalidInput.WithMessage(
			fmt.Sprintf("opening hours require exactly 7 rows, got %d", len(hours)))
	}

	// Every weekday exactly once.
	var seen [7]bool
	for _, h := range hours {
		if h.Weekday < 0 || h.Weekday > 6 || seen[h.Weekday] {
			return store.ErrInvalidInput.WithMessage("opening hours must cover weekdays 0-6 exactly once")
		}
		seen[h.Weekday] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM opening_hours WHERE restaurant_id = ?`, restaurantID); err != nil {
		return err
	}

	for _, h := range hours {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO opening_hours (id, restaurant_id, weekday, open_time, close_time, closed)
			VALUES (?, ?, ?, ?, ?, ?)`,
			h.ID,
			restaurantID,
			h.Weekday,
			h.OpenTime,
			h.CloseTime,
			boolInt(h.Closed),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
