package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

func TestLocationUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestRestaurant(t, s, "rest-1", "Spice Garden")

	// Absent until first write.
	_, err := s.GetLocation(ctx, "rest-1")
	if !errors.Is(err, store.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}

	loc := &domain.Location{
		ID:           "loc-1",
		RestaurantID: "rest-1",
		Address:      "12 Curry Lane",
		City:         "Mumbai",
		UpdatedAt:    time.Now(),
	}
	if err := s.UpsertLocation(ctx, loc); err != nil {
		t.Fatalf("UpsertLocation: %v", err)
	}

	// Second upsert replaces, stays one-to-one.
	loc.Address = "14 Curry Lane"
	loc.UpdatedAt = time.Now()
	if err := s.UpsertLocation(ctx, loc); err != nil {
		t.Fatalf("UpsertLocation (update): %v", err)
	}

	got, err := s.GetLocation(ctx, "rest-1")
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if got.Address != "14 Curry Lane" {
		t.Errorf("Address: got %q, want %q", got.Address, "14 Curry Lane")
	}
}

func TestFeaturesUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestRestaurant(t, s, "rest-1", "Spice Garden")

	_, err := s.GetFeatures(ctx, "rest-1")
	if !errors.Is(err, store.ErrFeaturesNotFound) {
		t.Fatalf("expected ErrFeaturesNotFound, got %v", err)
	}

	f := &domain.Features{
		ID:           "feat-1",
		RestaurantID: "rest-1",
		WiFi:         true,
		Delivery:     true,
	}
	if err := s.UpsertFeatures(ctx, f); err != nil {
		t.Fatalf("UpsertFeatures: %v", err)
	}

	f.Delivery = false
	f.OutdoorSeats = true
	if err := s.UpsertFeatures(ctx, f); err != nil {
		t.Fatalf("UpsertFeatures (update): %v", err)
	}

	got, err := s.GetFeatures(ctx, "rest-1")
	if err != nil {
		t.Fatalf("GetFeatures: %v", err)
	}
	if !got.WiFi || got.Delivery || !got.OutdoorSeats {
		t.Errorf("features flags wrong: %+v", got)
	}
}

func TestGalleryOrderAndReorder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestRestaurant(t, s, "rest-1", "Spice Garden")

	for i, id := range []string{"img-a", "img-b", "img-c"} {
		img := &domain.GalleryImage{
			ID:           id,
			RestaurantID: "rest-1",
			ImageURL:     "https://cdn.example.com/" + id + ".jpg",
			DisplayOrder: i,
			CreatedAt:    time.Now(),
		}
		if err := s.CreateGalleryImage(ctx, img); err != nil {
			t.Fatalf("CreateGalleryImage: %v", err)
		}
	}

	if err := s.ReorderGalleryImages(ctx, "rest-1", []string{"img-c", "img-a", "img-b"}); err != nil {
		t.Fatalf("ReorderGalleryImages: %v", err)
	}

	images, err := s.ListGalleryImages(ctx, "rest-1")
	if err != nil {
		t.Fatalf("ListGalleryImages: %v", err)
	}

	want := []string{"img-c", "img-a", "img-b"}
	if len(images) != len(want) {
		t.Fatalf("got %d images, want %d", len(images), len(want))
	}
	for i, id := range want {
		if images[i].ID != id {
			t.Errorf("images[%d]: got %q, want %q", i, images[i].ID, id)
		}
	}
}
