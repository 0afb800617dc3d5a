package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	domainerrors "github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/errors"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestService(t *testing.T, st store.Store) *ProfileService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProfileService(st, logger, 5*time.Second)
}

func seedRestaurant(t *testing.T, st store.Store, id, name string, createdAt time.Time) *domain.Restaurant {
	t.Helper()
	r := &domain.Restaurant{
		ID:        id,
		OwnerID:   "owner-1",
		Name:      name,
		Cuisines:  []string{"indian"},
		ThemeID:   "classic-warm",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := st.CreateRestaurant(context.Background(), r); err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}
	return r
}

func TestResolveSlug(t *testing.T) {
	st := newTestStore(t)
	svc := newTestService(t, st)
	ctx := context.Background()

	seedRestaurant(t, st, "rest-1", "Tony's Pizza Place", time.Now())

	r, err := svc.ResolveSlug(ctx, "tonys-pizza-place")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if r.ID != "rest-1" {
		t.Errorf("ID: got %q, want rest-1", r.ID)
	}

	// The lookup is a partial match, so a slug prefix still resolves.
	r, err = svc.ResolveSlug(ctx, "tonys-pizza")
	if err != nil {
		t.Fatalf("ResolveSlug (partial): %v", err)
	}
	if r.ID != "rest-1" {
		t.Errorf("ID: got %q, want rest-1", r.ID)
	}
}

func TestResolveSlug_NotFound(t *testing.T) {
	st := newTestStore(t)
	svc := newTestService(t, st)
	ctx := context.Background()

	seedRestaurant(t, st, "rest-1", "Spice Garden", time.Now())

	for _, raw := range []string{"ocean-pearl", "", "!!!"} {
		_, err := svc.ResolveSlug(ctx, raw)
		if !errors.Is(err, domainerrors.ErrNotFound) {
			t.Errorf("ResolveSlug(%q): expected ErrNotFound, got %v", raw, err)
		}
	}
}

func TestResolveSlug_EarliestCreatedWins(t *testing.T) {
	st := newTestStore(t)
	svc := newTestService(t, st)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedRestaurant(t, st, "rest-newer", "Cafe Rio Grande", base.Add(30*time.Minute))
	seedRestaurant(t, st, "rest-older", "Cafe Rio", base)

	r, err := svc.ResolveSlug(ctx, "cafe-rio")
	if err != nil {
		t.Fatalf("ResolveSlug: %v", err)
	}
	if r.ID != "rest-older" {
		t.Errorf("ID: got %q, want rest-older", r.ID)
	}
}

func TestFetchProfile(t *testing.T) {
	st := newTestStore(t)
	svc := newTestService(t, st)
	ctx := context.Background()

	r := seedRestaurant(t, st, "rest-1", "Spice Garden", time.Now())

	if err := st.UpsertLocation(ctx, &domain.Location{
		ID: "loc-1", RestaurantID: "rest-1", Address: "12 Curry Lane", City: "Mumbai", UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("UpsertLocation: %v", err)
	}
	if err := st.CreateMenuCategory(ctx, &domain.MenuCategory{
		ID: "cat-1", RestaurantID: "rest-1", Name: "Starters", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateMenuCategory: %v", err)
	}
	if err := st.CreateMenuItem(ctx, &domain.MenuItem{
		ID: "item-1", RestaurantID: "rest-1", CategoryID: "cat-1", Name: "Samosa", Price: 4.50, IsAvailable: true, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	if err := st.CreateOffer(ctx, &domain.Offer{
		ID: "offer-active", RestaurantID: "rest-1", Title: "Lunch Deal", Active: true, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}
	if err := st.CreateOffer(ctx, &domain.Offer{
		ID: "offer-paused", RestaurantID: "rest-1", Title: "Old Deal", Active: false, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	p, err := svc.FetchProfile(ctx, r)
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}

	if p.Restaurant.ID != "rest-1" {
		t.Errorf("Restaurant.ID: got %q", p.Restaurant.ID)
	}
	if p.Location == nil || p.Location.City != "Mumbai" {
		t.Errorf("Location: got %+v", p.Location)
	}
	// Features were never saved; the section is omitted, not an error.
	if p.Features != nil {
		t.Errorf("Features: got %+v, want nil", p.Features)
	}
	if p.HoursSet() {
		t.Error("HoursSet: got true for unset hours")
	}
	if len(p.Categories) != 1 || len(p.Items) != 1 {
		t.Errorf("menu: got %d categories, %d items", len(p.Categories), len(p.Items))
	}
	if len(p.Offers) != 1 || p.Offers[0].ID != "offer-active" {
		t.Errorf("Offers: got %+v, want only the active offer", p.Offers)
	}
}

// faultStore wraps a real store and fails or stalls one child read.
type faultStore struct {
	store.Store
	itemsErr   error
	itemsStall bool
}

func (f *faultStore) ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	if f.itemsStall {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.Store.ListMenuItems(ctx, restaurantID)
}

func TestFetchProfile_AllOrNothing(t *testing.T) {
	st := newTestStore(t)
	r := seedRestaurant(t, st, "rest-1", "Spice Garden", time.Now())

	faulty := &faultStore{Store: st, itemsErr: errors.New("disk on fire")}
	svc := newTestService(t, faulty)

	_, err := svc.FetchProfile(context.Background(), r)
	if !errors.Is(err, domainerrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchProfile_Timeout(t *testing.T) {
	st := newTestStore(t)
	r := seedRestaurant(t, st, "rest-1", "Spice Garden", time.Now())

	faulty := &faultStore{Store: st, itemsStall: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewProfileService(faulty, logger, 50*time.Millisecond)

	start := time.Now()
	_, err := svc.FetchProfile(context.Background(), r)
	if !errors.Is(err, domainerrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("fetch did not respect timeout, took %v", elapsed)
	}
}

func TestLoadBySlug(t *testing.T) {
	st := newTestStore(t)
	svc := newTestService(t, st)

	seedRestaurant(t, st, "rest-1", "Spice Garden", time.Now())

	p, err := svc.LoadBySlug(context.Background(), "spice-garden")
	if err != nil {
		t.Fatalf("LoadBySlug: %v", err)
	}
	if p.Restaurant.Name != "Spice Garden" {
		t.Errorf("Name: got %q", p.Restaurant.Name)
	}
}
