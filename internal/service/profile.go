// Package service implements the public resolution and aggregation pipeline
// plus the menu filter engine. Handlers stay thin; everything between the
// router and the store lives here.
package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	domainerrors "github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/errors"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/slug"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store"
)

// ProfileService resolves public slugs to restaurants and assembles the
// full profile aggregate for a page load.
type ProfileService struct {
	store        store.Store
	logger       *slog.Logger
	fetchTimeout time.Duration
}

// NewProfileService creates a new profile service. fetchTimeout bounds the
// whole aggregate fetch; zero or negative falls back to 10 seconds.
func NewProfileService(st store.Store, logger *slog.Logger, fetchTimeout time.Duration) *ProfileService {
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &ProfileService{
		store:        st,
		logger:       logger,
		fetchTimeout: fetchTimeout,
	}
}

// ResolveSlug maps a URL slug back to a restaurant. The slug is never
// stored, so resolution re-normalizes the input and runs a case-insensitive
// partial name match. Ties go to the earliest-created restaurant.
//
// Returns NOT_FOUND when nothing matches and UNAVAILABLE when the lookup
// itself fails; callers must keep the two apart.
func (s *ProfileService) ResolveSlug(ctx context.Context, rawSlug string) (*domain.Restaurant, error) {
	normalized := slug.Slugify(rawSlug)
	if normalized == "" {
		return nil, domainerrors.NotFound("restaurant not found")
	}

	fragment := slug.Searchable(normalized)
	r, err := s.store.FindRestaurantByName(ctx, fragment)
	if err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("no restaurant matches %q", normalized)
		}
		s.logger.Error("slug lookup failed", "slug", normalized, "error", err)
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "restaurant lookup failed")
	}
	return r, nil
}

// FetchProfile loads every dependent collection of a restaurant in
// parallel and assembles the aggregate. The fetch is all-or-nothing: any
// failed read cancels the rest and the whole load reports UNAVAILABLE, so
// the page never renders a partially hydrated profile. The entire fan-out
// shares one deadline.
//
// An absent location or features row is not a failure; those sections are
// simply omitted from the view.
func (s *ProfileService) FetchProfile(ctx context.Context, r *domain.Restaurant) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	profile := &domain.Profile{Restaurant: r}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		loc, err := s.store.GetLocation(gctx, r.ID)
		if err != nil {
			if domainerrors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		profile.Location = loc
		return nil
	})

	g.Go(func() error {
		hours, err := s.store.ListOpeningHours(gctx, r.ID)
		if err != nil {
			return err
		}
		profile.Hours = hours
		return nil
	})

	g.Go(func() error {
		f, err := s.store.GetFeatures(gctx, r.ID)
		if err != nil {
			if domainerrors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		profile.Features = f
		return nil
	})

	g.Go(func() error {
		categories, err := s.store.ListMenuCategories(gctx, r.ID)
		if err != nil {
			return err
		}
		profile.Categories = categories
		return nil
	})

	g.Go(func() error {
		items, err := s.store.ListMenuItems(gctx, r.ID)
		if err != nil {
			return err
		}
		profile.Items = items
		return nil
	})

	g.Go(func() error {
		images, err := s.store.ListGalleryImages(gctx, r.ID)
		if err != nil {
			return err
		}
		profile.Images = images
		return nil
	})

	g.Go(func() error {
		offers, err := s.store.ListActiveOffers(gctx, r.ID)
		if err != nil {
			return err
		}
		profile.Offers = offers
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("profile fetch failed", "restaurant_id", r.ID, "error", err)
		if domainerrors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.Unavailable("profile fetch timed out")
		}
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "profile fetch failed")
	}

	return profile, nil
}

// LoadBySlug is the full public path: resolve the slug, then fetch the
// aggregate for the matched restaurant.
func (s *ProfileService) LoadBySlug(ctx context.Context, rawSlug string) (*domain.Profile, error) {
	r, err := s.ResolveSlug(ctx, rawSlug)
	if err != nil {
		return nil, err
	}
	return s.FetchProfile(ctx, r)
}
