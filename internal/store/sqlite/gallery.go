package sqlite

import (
	"context"
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

const imageColumns = `id, restaurant_id, image_url, caption, display_order, created_at`

// scanGalleryImage scans a row into a domain.GalleryImage.
func scanGalleryImage(scanner interface{ Scan(dest ...any) error }) (*domain.GalleryImage, error) {
	var img domain.GalleryImage
	var createdAt string

	err := scanner.Scan(
		&img.ID,
		&img.RestaurantID,
		&img.ImageURL,
		&img.Caption,
		&img.DisplayOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	img.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// CreateGalleryImage inserts a new gallery image.
func (s *Store) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gallery_images (id, restaurant_id, image_url, caption, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		img.ID,
		img.RestaurantID,
		img.ImageURL,
		img.Caption,
		img.DisplayOrder,
		formatTime(img.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ListGalleryImages returns a restaurant's images by display order.
func (s *Store) ListGalleryImages(ctx context.Context, restaurantID string) ([]*domain.GalleryImage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+imageColumns+` FROM gallery_images
		 WHERE restaurant_id = ? ORDER BY display_order ASC, created_at ASC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*domain.GalleryImage
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// ReorderGalleryImages rewrites display_order to match orderedIDs, in one
// transaction. IDs not belonging to the restaurant are ignored by the
// WHERE clause rather than failing the whole reorder.
func (s *Store) ReorderGalleryImages(ctx context.Context, restaurantID string, orderedIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx,
			`UPDATE gallery_images SET display_order = ? WHERE id = ? AND restaurant_id = ?`,
			i, id, restaurantID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteGalleryImage removes a gallery image.
func (s *Store) DeleteGalleryImage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrImageNotFound
	}
	return nil
}
