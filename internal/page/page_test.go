package page

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store/sqlite"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/theme"
)

var testConfig = Config{OffersInterval: time.Hour, GalleryInterval: time.Hour}

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

func newTestSession(t *testing.T, st store.Store) *Session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewProfileService(st, logger, 5*time.Second)
	sess := NewSession(svc, logger, testConfig)
	t.Cleanup(sess.Close)
	return sess
}

func seedProfile(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()

	r := &domain.Restaurant{
		ID:        "rest-1",
		OwnerID:   "owner-1",
		Name:      "Spice Garden",
		Cuisines:  []string{"indian"},
		ThemeID:   "midnight-gold",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := st.CreateRestaurant(ctx, r); err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
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
	for i, id := range []string{"img-1", "img-2"} {
		if err := st.CreateGalleryImage(ctx, &domain.GalleryImage{
			ID: id, RestaurantID: "rest-1", ImageURL: "https://cdn.example.com/" + id + ".jpg", DisplayOrder: i, CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("CreateGalleryImage: %v", err)
		}
	}
	if err := st.CreateOffer(ctx, &domain.Offer{
		ID: "offer-1", RestaurantID: "rest-1", Title: "Lunch Deal", Active: true, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}
}

func TestLoadReady(t *testing.T) {
	st := newTestStore(t)
	seedProfile(t, st)
	sess := newTestSession(t, st)

	if got := sess.Load(context.Background(), "spice-garden"); got != StateReady {
		t.Fatalf("Load: got state %q, want ready", got)
	}

	v := sess.View()
	if v.State != StateReady {
		t.Errorf("View.State: got %q", v.State)
	}
	if v.Profile == nil || v.Profile.Restaurant.ID != "rest-1" {
		t.Fatalf("View.Profile: got %+v", v.Profile)
	}
	if v.Theme == nil || v.Theme.ID != "midnight-gold" {
		t.Errorf("Theme: got %+v, want midnight-gold", v.Theme)
	}
	if v.Filter.Category != service.FilterAll {
		t.Errorf("default filter: got %q, want all", v.Filter.Category)
	}
	if v.Menu == nil || len(v.Menu.Sections) != 1 {
		t.Errorf("Menu: got %+v", v.Menu)
	}
	if sess.Gallery().Count() != 2 || sess.Offers().Count() != 1 {
		t.Errorf("carousels: gallery %d offers %d", sess.Gallery().Count(), sess.Offers().Count())
	}
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	st := newTestStore(t)
	sess := newTestSession(t, st)

	r := &domain.Restaurant{
		ID: "rest-1", OwnerID: "owner-1", Name: "Spice Garden",
		Cuisines: []string{}, ThemeID: "does-not-exist",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if err := st.CreateRestaurant(context.Background(), r); err != nil {
		t.Fatalf("CreateRestaurant: %v", err)
	}

	sess.Load(context.Background(), "spice-garden")
	v := sess.View()
	if v.Theme == nil || v.Theme.ID != theme.Catalog[0].ID {
		t.Errorf("Theme: got %+v, want catalog fallback", v.Theme)
	}
}

func TestLoadNotFound(t *testing.T) {
	st := newTestStore(t)
	sess := newTestSession(t, st)

	if got := sess.Load(context.Background(), "no-such-place"); got != StateNotFound {
		t.Fatalf("Load: got state %q, want not_found", got)
	}

	v := sess.View()
	if v.Error == nil {
		t.Error("View.Error: got nil")
	}
	if v.Profile != nil {
		t.Errorf("View.Profile: got %+v, want nil", v.Profile)
	}

	// Sub-state mutation outside Ready is ignored.
	sess.SetCategory("cat-1")
	sess.SetSearch("samosa")
	if sess.State() != StateNotFound {
		t.Errorf("state changed to %q", sess.State())
	}
}

// brokenStore fails every child read.
type brokenStore struct {
	store.Store
}

func (b *brokenStore) ListMenuItems(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadError(t *testing.T) {
	st := newTestStore(t)
	seedProfile(t, st)
	sess := newTestSession(t, &brokenStore{Store: st})

	if got := sess.Load(context.Background(), "spice-garden"); got != StateError {
		t.Fatalf("Load: got state %q, want error", got)
	}
	v := sess.View()
	if v.Error == nil {
		t.Error("View.Error: got nil")
	}
}

func TestFilterSubState(t *testing.T) {
	st := newTestStore(t)
	seedProfile(t, st)
	sess := newTestSession(t, st)

	sess.Load(context.Background(), "spice-garden")

	sess.SetSearch("samosa")
	v := sess.View()
	if len(v.Menu.Sections) != 1 {
		t.Errorf("search hit: got %d sections", len(v.Menu.Sections))
	}

	sess.SetSearch("tiramisu")
	v = sess.View()
	if len(v.Menu.Sections) != 0 {
		t.Errorf("search miss: got %d sections", len(v.Menu.Sections))
	}
}

// gateStore stalls slug lookups for one restaurant name until released.
type gateStore struct {
	store.Store
	stallOn string
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gateStore) FindRestaurantByName(ctx context.Context, fragment string) (*domain.Restaurant, error) {
	if fragment == g.stallOn {
		g.once.Do(func() { close(g.started) })
		<-g.release
	}
	return g.Store.FindRestaurantByName(ctx, fragment)
}

func TestStaleLoadIsDropped(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Slow Snail", "Fast Falcon"} {
		r := &domain.Restaurant{
			ID: "rest-" + name[:4], OwnerID: "owner-1", Name: name,
			Cuisines: []string{}, CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}
		if err := st.CreateRestaurant(ctx, r); err != nil {
			t.Fatalf("CreateRestaurant: %v", err)
		}
	}

	gate := &gateStore{
		Store:   st,
		stallOn: "slow snail",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	sess := newTestSession(t, gate)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sess.Load(ctx, "slow-snail")
	}()

	<-gate.started
	if got := sess.Load(ctx, "fast-falcon"); got != StateReady {
		t.Fatalf("second load: got %q", got)
	}

	close(gate.release)
	wg.Wait()

	// The slower first load must not overwrite the newer navigation.
	v := sess.View()
	if v.State != StateReady {
		t.Fatalf("state: got %q, want ready", v.State)
	}
	if v.Profile.Restaurant.Name != "Fast Falcon" {
		t.Errorf("profile: got %q, want Fast Falcon", v.Profile.Restaurant.Name)
	}
}
