// Package page holds the lifecycle of one public profile page: the load
// state machine, the menu filter sub-state, and the two slide controllers.
// A Session is created per navigation and discarded when the visitor
// leaves.
package page

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/carousel"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	domainerrors "github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/errors"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/service"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/theme"
)

// State is the page's load phase.
type State string

const (
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateNotFound State = "not_found"
	StateError    State = "error"
)

// Config carries the carousel cadences.
type Config struct {
	OffersInterval  time.Duration
	GalleryInterval time.Duration
}

// Session is one visitor's page. All mutation goes through methods; View
// returns an immutable snapshot for rendering.
//
// A load that lands in NotFound or Error stays there; recovery is a fresh
// Load, which represents the visitor navigating again.
type Session struct {
	loader *service.ProfileService
	logger *slog.Logger
	cfg    Config

	mu         sync.Mutex
	state      State
	generation uint64
	profile    *domain.Profile
	theme      *theme.Theme
	loadErr    *domainerrors.Error
	filter     service.MenuFilter
	offers     *carousel.Controller
	gallery    *carousel.Controller
}

// NewSession creates an unloaded session.
func NewSession(loader *service.ProfileService, logger *slog.Logger, cfg Config) *Session {
	return &Session{
		loader: loader,
		logger: logger,
		cfg:    cfg,
		state:  StateLoading,
	}
}

// Load resolves the slug and hydrates the page. Each call bumps the load
// generation; if another Load started while this one was in flight, the
// slower result is dropped so a stale profile never overwrites a newer
// navigation.
func (s *Session) Load(ctx context.Context, rawSlug string) State {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = StateLoading
	s.loadErr = nil
	s.mu.Unlock()

	profile, err := s.loader.LoadBySlug(ctx, rawSlug)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("dropping stale page load", "slug", rawSlug)
		return s.state
	}

	if err != nil {
		var derr *domainerrors.Error
		if !domainerrors.As(err, &derr) {
			derr = domainerrors.Internal(err.Error())
		}
		s.loadErr = derr
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			s.state = StateNotFound
		} else {
			s.state = StateError
		}
		return s.state
	}

	s.profile = profile
	s.theme = theme.Resolve(profile.Restaurant.ThemeID)
	s.filter = service.MenuFilter{Category: service.FilterAll}
	s.resetCarouselsLocked()
	s.state = StateReady
	return s.state
}

// resetCarouselsLocked rebuilds both controllers against the freshly
// loaded profile. Caller holds s.mu.
func (s *Session) resetCarouselsLocked() {
	if s.offers != nil {
		s.offers.Stop()
	}
	if s.gallery != nil {
		s.gallery.Stop()
	}
	s.offers = carousel.New(len(s.profile.Offers), s.cfg.OffersInterval)
	s.gallery = carousel.New(len(s.profile.Images), s.cfg.GalleryInterval)
}

// State returns the current load phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetCategory switches the menu view. Ignored unless the page is ready.
func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return
	}
	s.filter.Category = category
}

// SetSearch updates the menu search query. Ignored unless the page is
// ready.
func (s *Session) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return
	}
	s.filter.Search = query
}

// Offers returns the offers slide controller, nil until the page is ready.
func (s *Session) Offers() *carousel.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers
}

// Gallery returns the gallery slide controller, nil until the page is
// ready.
func (s *Session) Gallery() *carousel.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gallery
}

// View is a render-ready snapshot of the session.
type View struct {
	State           State               `json:"state"`
	Error           *domainerrors.Error `json:"error,omitempty"`
	Profile         *domain.Profile     `json:"profile,omitempty"`
	Theme           *theme.Theme        `json:"theme,omitempty"`
	Menu            *service.MenuView   `json:"menu,omitempty"`
	CategoryChoices []string            `json:"category_choices,omitempty"`
	Filter          service.MenuFilter  `json:"-"`
	OfferIndex      int                 `json:"offer_index"`
	GalleryIndex    int                 `json:"gallery_index"`
}

// View assembles the current snapshot. Outside Ready only the state and
// error are meaningful.
func (s *Session) View() *View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &View{State: s.state, Error: s.loadErr}
	if s.state != StateReady {
		return v
	}

	v.Profile = s.profile
	v.Theme = s.theme
	v.Menu = service.FilterMenu(s.profile.Categories, s.profile.Items, s.filter)
	v.CategoryChoices = service.Categories(s.profile.Categories, s.profile.Items)
	v.Filter = s.filter
	v.OfferIndex = s.offers.Index()
	v.GalleryIndex = s.gallery.Index()
	return v
}

// Close releases the session's tickers. Safe on never-loaded sessions.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offers != nil {
		s.offers.Stop()
	}
	if s.gallery != nil {
		s.gallery.Stop()
	}
}
