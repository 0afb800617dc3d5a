// Package main provides a tool to seed the database with a demo restaurant.
//
// It writes a complete profile (location, hours, features, menu, gallery,
// offers) so the public endpoint has something to render right away.
//
// Usage:
//
//	DB_PATH=~/RestaurantProfiles/profiles.db go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/id"
	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/store/sqlite"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/RestaurantProfiles/profiles.db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := sqlite.Open(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	restaurantID := mustID("rest")
	now := time.Now()

	restaurant := &domain.Restaurant{
		ID:          restaurantID,
		OwnerID:     "demo-owner",
		Name:        "Spice Garden",
		Description: "Family-run North Indian kitchen, serving the neighbourhood since 1998.",
		Cuisines:    []string{"north indian", "mughlai"},
		Phone:       "+91 98765 43210",
		Email:       "hello@spicegarden.example",
		PriceRange:  "$$",
		Rating:      4.4,
		OfferText:   "20% off on family platters this week",
		ThemeID:     "midnight-gold",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.CreateRestaurant(ctx, restaurant); err != nil {
		log.Fatalf("Failed to create restaurant: %v", err)
	}
	fmt.Printf("Created restaurant %s (%s)\n", restaurant.Name, restaurantID)

	if err := s.UpsertLocation(ctx, &domain.Location{
		ID:           mustID("loc"),
		RestaurantID: restaurantID,
		Address:      "14 Lotus Market Road",
		City:         "Pune",
		State:        "Maharashtra",
		PostalCode:   "411001",
		Landmark:     "Opposite the clock tower",
		UpdatedAt:    now,
	}); err != nil {
		log.Fatalf("Failed to save location: %v", err)
	}

	hours := make([]*domain.OpeningHours, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		row := &domain.OpeningHours{
			ID:           mustID("hrs"),
			RestaurantID: restaurantID,
			Weekday:      weekday,
			OpenTime:     "11:00",
			CloseTime:    "23:00",
		}
		// Closed on Mondays.
		if weekday == 1 {
			row.OpenTime = ""
			row.CloseTime = ""
			row.Closed = true
		}
		hours = append(hours, row)
	}
	if err := s.ReplaceOpeningHours(ctx, restaurantID, hours); err != nil {
		log.Fatalf("Failed to save hours: %v", err)
	}

	if err := s.UpsertFeatures(ctx, &domain.Features{
		ID:             mustID("feat"),
		RestaurantID:   restaurantID,
		Parking:        true,
		WiFi:           true,
		AirConditioned: true,
		Delivery:       true,
		Takeaway:       true,
		Wheelchair:     true,
	}); err != nil {
		log.Fatalf("Failed to save features: %v", err)
	}

	seedMenu(ctx, s, restaurantID)
	seedGallery(ctx, s, restaurantID)
	seedOffers(ctx, s, restaurantID)

	fmt.Println("Done. Public URL slug: spice-garden")
}

func seedMenu(ctx context.Context, s *sqlite.Store, restaurantID string) {
	categories := []struct {
		name  string
		items []*domain.MenuItem
	}{
		{
			name: "Starters",
			items: []*domain.MenuItem{
				{Name: "Samosa Chaat", Description: "Crushed samosas under tangy chutneys", Price: 140, Vegetarian: true, IsAvailable: true},
				{Name: "Paneer Tikka", Description: "Charred cottage cheese off the tandoor", Price: 260, Vegetarian: true, IsSpecial: true, IsAvailable: true},
				{Name: "Chicken 65", Description: "South-style fried chicken, curry leaf tempering", Price: 290, IsAvailable: true},
			},
		},
		{
			name: "Mains",
			items: []*domain.MenuItem{
				{Name: "Butter Chicken", Description: "The house classic, slow-simmered makhani gravy", Price: 380, IsSpecial: true, IsAvailable: true},
				{Name: "Dal Makhani", Description: "Black lentils finished with cream", Price: 280, Vegetarian: true, IsAvailable: true},
				{Name: "Mutton Rogan Josh", Description: "Kashmiri-style, on the bone", Price: 420, IsAvailable: false},
			},
		},
		{
			name: "Desserts",
			items: []*domain.MenuItem{
				{Name: "Gulab Jamun", Description: "Warm, with saffron syrup", Price: 120, Vegetarian: true, IsAvailable: true},
				{Name: "Kulfi Falooda", Description: "Pistachio kulfi over vermicelli", Price: 160, Vegetarian: true, IsAvailable: true},
			},
		},
	}

	now := time.Now()
	for order, cat := range categories {
		category := &domain.MenuCategory{
			ID:           mustID("cat"),
			RestaurantID: restaurantID,
			Name:         cat.name,
			DisplayOrder: order,
			CreatedAt:    now,
		}
		if err := s.CreateMenuCategory(ctx, category); err != nil {
			log.Fatalf("Failed to create category %q: %v", cat.name, err)
		}
		for _, item := range cat.items {
			item.ID = mustID("item")
			item.RestaurantID = restaurantID
			item.CategoryID = category.ID
			item.CreatedAt = now
			if err := s.CreateMenuItem(ctx, item); err != nil {
				log.Fatalf("Failed to create item %q: %v", item.Name, err)
			}
		}
	}
	fmt.Println("Seeded menu: 3 categories, 8 items")
}

func seedGallery(ctx context.Context, s *sqlite.Store, restaurantID string) {
	captions := []string{
		"The dining room at dusk",
		"Tandoor station",
		"Thali spread",
		"Courtyard seating",
	}
	now := time.Now()
	for order, caption := range captions {
		image := &domain.GalleryImage{
			ID:           mustID("img"),
			RestaurantID: restaurantID,
			ImageURL:     fmt.Sprintf("https://images.spicegarden.example/gallery/%d.jpg", order+1),
			Caption:      caption,
			DisplayOrder: order,
			CreatedAt:    now,
		}
		if err := s.CreateGalleryImage(ctx, image); err != nil {
			log.Fatalf("Failed to create gallery image: %v", err)
		}
	}
	fmt.Println("Seeded gallery: 4 images")
}

func seedOffers(ctx context.Context, s *sqlite.Store, restaurantID string) {
	nextWeek := time.Now().AddDate(0, 0, 7)
	offers := []*domain.Offer{
		{Title: "Family platter, 20% off", Description: "Weekdays only, dine-in", Active: true, ValidUntil: &nextWeek},
		{Title: "Free dessert with every thali", Description: "While stocks last", Active: true},
		{Title: "Monsoon special", Description: "Paused until the season starts", Active: false},
	}
	now := time.Now()
	for _, offer := range offers {
		offer.ID = mustID("offer")
		offer.RestaurantID = restaurantID
		offer.CreatedAt = now
		if err := s.CreateOffer(ctx, offer); err != nil {
			log.Fatalf("Failed to create offer %q: %v", offer.Title, err)
		}
	}
	fmt.Println("Seeded offers: 2 active, 1 paused")
}

func mustID(prefix string) string {
	generated, err := id.Generate(prefix)
	if err != nil {
		log.Fatalf("Failed to generate id: %v", err)
	}
	return generated
}
