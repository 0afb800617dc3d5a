package api

import (
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/http/response"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/page"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/ratelimit"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store/sqlite"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/validation"
)

func newTestServer(t *testing.T) (*Server, *sqlite.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	profiles := service.NewProfileService(st, logger, 5*time.Second)
	pageCfg := page.Config{OffersInterval: time.Hour, GalleryInterval: time.Hour}

	srv := NewServer(st, profiles, validation.New(), nil, pageCfg, logger)
	return srv, st
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}

func seedFullProfile(t *testing.T, st *sqlite.Store) {
	t.Helper()
	ctx := context.Background()

	r := &domain.Restaurant{
		ID:        "rest-1",
		OwnerID:   "owner-1",
		Name:      "Spice Garden",
		Cuisines:  []string{"indian"},
		ThemeID:   "classic-warm",
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
	items := []*domain.MenuItem{
		{ID: "item-1", CategoryID: "cat-1", Name: "Samosa", Price: 4.50, IsAvailable: true},
		{ID: "item-2", CategoryID: "cat-1", Name: "Paneer Tikka", Price: 9.00, IsAvailable: true, IsSpecial: true},
		{ID: "item-3", CategoryID: "cat-1", Name: "Kulfi", Price: 3.00, IsAvailable: false},
	}
	for _, it := range items {
		it.RestaurantID = "rest-1"
		it.CreatedAt = time.Now()
		if err := st.CreateMenuItem(ctx, it); err != nil {
			t.Fatalf("CreateMenuItem: %v", err)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Error("expected success envelope")
	}
}

func TestGetPublicProfile(t *testing.T) {
	srv, st := newTestServer(t)
	seedFullProfile(t, st)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/spice-garden", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatal("expected success envelope")
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data: got %T", env.Data)
	}
	if data["state"] != "ready" {
		t.Errorf("state: got %v", data["state"])
	}
	if data["theme"] == nil {
		t.Error("theme missing from view")
	}
	profile, ok := data["profile"].(map[string]any)
	if !ok {
		t.Fatalf("profile: got %T", data["profile"])
	}
	restaurant, ok := profile["restaurant"].(map[string]any)
	if !ok || restaurant["name"] != "Spice Garden" {
		t.Errorf("restaurant: got %v", profile["restaurant"])
	}
}

func TestGetPublicProfile_MenuFilterParams(t *testing.T) {
	srv, st := newTestServer(t)
	seedFullProfile(t, st)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/spice-garden?category=specials", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	data := env.Data.(map[string]any)
	menu, ok := data["menu"].(map[string]any)
	if !ok {
		t.Fatalf("menu: got %T", data["menu"])
	}
	sections, ok := menu["sections"].([]any)
	if !ok || len(sections) != 1 {
		t.Fatalf("sections: got %v", menu["sections"])
	}
	section := sections[0].(map[string]any)
	sectionItems := section["items"].([]any)
	if len(sectionItems) != 1 {
		t.Fatalf("specials view: got %d items, want 1", len(sectionItems))
	}
	item := sectionItems[0].(map[string]any)
	if item["name"] != "Paneer Tikka" {
		t.Errorf("special item: got %v", item["name"])
	}
}

func TestGetPublicProfile_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/no-such-place", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("expected failure envelope")
	}
	if env.Code != "NOT_FOUND" {
		t.Errorf("code: got %q, want NOT_FOUND", env.Code)
	}
}

func TestPublicProfile_RateLimited(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	limiter := ratelimit.New(1, 1)
	t.Cleanup(limiter.Stop)

	profiles := service.NewProfileService(st, logger, 5*time.Second)
	srv := NewServer(st, profiles, validation.New(), limiter,
		page.Config{OffersInterval: time.Hour, GalleryInterval: time.Hour}, logger)

	first := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/anything", "")
	if first.Code == http.StatusTooManyRequests {
		t.Fatal("first request should pass the limiter")
	}

	second := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/anything", "")
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want 429", second.Code)
	}

	// The admin surface is not rate limited.
	admin := doRequest(t, srv, http.MethodGet, "/api/v1/admin/restaurants/?owner_id=owner-1", "")
	if admin.Code == http.StatusTooManyRequests {
		t.Error("admin surface should not be rate limited")
	}
}

func TestListThemes(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/themes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	themes, ok := env.Data.([]any)
	if !ok || len(themes) == 0 {
		t.Fatalf("themes: got %v", env.Data)
	}
}

func TestCreateRestaurant(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"owner_id":"owner-1","name":"Spice Garden","cuisines":["indian"],"price_range":"$$"}`
	w := doRequest(t, srv, http.MethodPost, "/api/v1/admin/restaurants/", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	data := env.Data.(map[string]any)
	restID, _ := data["id"].(string)
	if !strings.HasPrefix(restID, "rest-") {
		t.Errorf("id: got %q, want rest- prefix", restID)
	}

	// The freshly created profile resolves publicly.
	pub := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/spice-garden", "")
	if pub.Code != http.StatusOK {
		t.Errorf("public resolution after create: got %d", pub.Code)
	}
}

func TestCreateRestaurant_ValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"owner_id":"owner-1"}`},
		{"bad price range", `{"owner_id":"owner-1","name":"X","price_range":"$$$$$"}`},
		{"bad email", `{"owner_id":"owner-1","name":"X","email":"not-an-email"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodPost, "/api/v1/admin/restaurants/", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestReplaceHours_RejectsPartialWeek(t *testing.T) {
	srv, st := newTestServer(t)
	seedFullProfile(t, st)

	// Only five rows; validation requires len=7 before the store is hit.
	body := `{"hours":[
		{"weekday":0,"closed":true},
		{"weekday":1,"open_time":"09:00","close_time":"22:00"},
		{"weekday":2,"open_time":"09:00","close_time":"22:00"},
		{"weekday":3,"open_time":"09:00","close_time":"22:00"},
		{"weekday":4,"open_time":"09:00","close_time":"22:00"}
	]}`
	w := doRequest(t, srv, http.MethodPut, "/api/v1/admin/restaurants/rest-1/hours", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400 (body: %s)", w.Code, w.Body.String())
	}
}

func TestUpdateItem_TogglesPublicVisibility(t *testing.T) {
	srv, st := newTestServer(t)
	seedFullProfile(t, st)

	w := doRequest(t, srv, http.MethodPatch, "/api/v1/admin/items/item-1", `{"is_available":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", w.Code, w.Body.String())
	}

	pub := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/spice-garden?search=samosa", "")
	env := decodeEnvelope(t, pub)
	data := env.Data.(map[string]any)
	menu := data["menu"].(map[string]any)
	if sections, _ := menu["sections"].([]any); len(sections) != 0 {
		t.Errorf("unavailable item still visible: %v", sections)
	}
}

func TestDeleteRestaurant_PublicGone(t *testing.T) {
	srv, st := newTestServer(t)
	seedFullProfile(t, st)

	w := doRequest(t, srv, http.MethodDelete, "/api/v1/admin/restaurants/rest-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status: got %d", w.Code)
	}

	pub := doRequest(t, srv, http.MethodGet, "/api/v1/restaurants/spice-garden", "")
	if pub.Code != http.StatusNotFound {
		t.Errorf("public resolution after delete: got %d, want 404", pub.Code)
	}
}
