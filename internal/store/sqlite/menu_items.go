package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const itemColumns = `id, restaurant_id, category_id, name, description, price,
	image_url, vegetarian, is_special, is_available, created_at`

// scanMenuItem scans a row into a domain.MenuItem.
func scanMenuItem(scanner interface{ Scan(dest ...any) error }) (*domain.MenuItem, error) {
	var it domain.MenuItem
	var vegetarian, special, available int
	var createdAt string

	err := scanner.Scan(
		&it.ID,
		&it.RestaurantID,
		&it.CategoryID,
		&it.Name,
		&it.Description,
		&it.Price,
		&it.ImageURL,
		&vegetarian,
		&special,
		&available,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	it.Vegetarian = vegetarian != 0
	it.IsSpecial = special != 0
	it.IsAvailable = available != 0

	it.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateMenuItem inserts a new menu item.
// The category foreign key rejects items pointing at a missing category.
func (s *Store) CreateMenuItem(ctx context.Context, it *domain.MenuItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO menu_items (
			id, restaurant_id, category_id, name, description, price,
			image_url, vegetarian, is_special, is_available, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID,
		it.RestaurantID,
		it.CategoryID,
		it.Name,
		it.Description,
		it.Price,
		it.ImageURL,
		boolInt(it.Vegetarian),
		boolInt(it.IsSpecial),
		boolInt(it.IsAvailable),
		formatTime(it.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (s *Store) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items WHERE id = ?`, id)

	it, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

// ListMenuItems returns every menu item of a restaurant. No ordering is
// guaranteed or meaningful; the menu filter layer searches and groups.
func (s *Store) ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM menu_items WHERE restaurant_id = ?`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		it, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateMenuItem updates all mutable fields of a menu item.
func (s *Store) UpdateMenuItem(ctx context.Context, it *domain.MenuItem) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE menu_items SET
			category_id = ?, name = ?, description = ?, price = ?,
			image_url = ?, vegetarian = ?, is_special = ?, is_available = ?
		WHERE id = ?`,
		it.CategoryID,
		it.Name,
		it.Description,
		it.Price,
		it.ImageURL,
		boolInt(it.Vegetarian),
		boolInt(it.IsSpecial),
		boolInt(it.IsAvailable),
		it.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return store.ErrCategoryNotFound
		}
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// DeleteMenuItem removes a menu item.
func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrItemNotFound
	}
	return nil
}
