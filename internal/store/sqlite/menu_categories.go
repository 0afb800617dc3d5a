package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const categoryColumns = `id, restaurant_id, name, description, display_order, created_at`

// scanMenuCategory scans a row into a domain.MenuCategory.
func scanMenuCategory(scanner interface{ Scan(dest ...any) error }) (*domain.MenuCategory, error) {
	var c domain.MenuCategory
	var createdAt string

	err := scanner.Scan(
		&c.ID,
		&c.RestaurantID,
		&c.Name,
		&c.Description,
		&c.DisplayOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateMenuCategory inserts a new category.
func (s *Store) CreateMenuCategory(ctx context.Context, c *domain.MenuCategory) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO menu_categories (id, restaurant_id, name, description, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.RestaurantID,
		c.Name,
		c.Description,
		c.DisplayOrder,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetMenuCategory retrieves a category by ID.
func (s *Store) GetMenuCategory(ctx context.Context, id string) (*domain.MenuCategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM menu_categories WHERE id = ?`, id)

	c, err := scanMenuCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListMenuCategories returns a restaurant's categories by display order.
func (s *Store) ListMenuCategories(ctx context.Context, restaurantID string) ([]*domain.MenuCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM menu_categories
		 WHERE restaurant_id = ? ORDER BY display_order ASC, created_at ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.MenuCategory
	for rows.Next() {
		c, err := scanMenuCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateMenuCategory updates a category's name, description, and order.
func (s *Store) UpdateMenuCategory(ctx context.Context, c *domain.MenuCategory) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE menu_categories SET name = ?, description = ?, display_order = ?
		WHERE id = ?`,
		c.Name,
		c.Description,
		c.DisplayOrder,
		c.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// DeleteMenuCategory removes a category. Its items cascade.
func (s *Store) DeleteMenuCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM menu_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}
