package service

import (
	"strings"

	"github.com/shaukatalidev/restaurant-admin-dashboard-sub000/internal/domain"
)

// Reserved category filter values. Anything else is treated as a
// category ID.
const (
	FilterAll      = "all"
	FilterSpecials = "specials"
)

// MenuFilter is the visitor's current menu view: one category selection
// and a free-text search. The two compose with AND.
type MenuFilter struct {
	Category string
	Search   string
}

// MenuSection is one category heading with its surviving items.
type MenuSection struct {
	Category *domain.MenuCategory `json:"category"`
	Items    []*domain.MenuItem   `json:"items"`
}

// MenuView is the filtered menu ready for rendering. Specials is populated
// only under the "all" view, where specials are pulled out of the regular
// grid into their own section. Under a specific category the specials stay
// inline, and under the "specials" view they are the whole grid.
type MenuView struct {
	Sections []*MenuSection     `json:"sections"`
	Specials []*domain.MenuItem `json:"specials,omitempty"`
}

// FilterMenu applies the filter to the full menu. Unavailable items never
// appear regardless of the other predicates. Sections keep the category
// display order and empty sections are dropped.
func FilterMenu(categories []*domain.MenuCategory, items []*domain.MenuItem, filter MenuFilter) *MenuView {
	query := strings.ToLower(strings.TrimSpace(filter.Search))

	matches := func(it *domain.MenuItem) bool {
		if !it.IsAvailable {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(it.Name), query) ||
			strings.Contains(strings.ToLower(it.Description), query)
	}

	view := &MenuView{Sections: []*MenuSection{}}

	if filter.Category == FilterSpecials {
		section := &MenuSection{Items: []*domain.MenuItem{}}
		for _, it := range items {
			if it.IsSpecial && matches(it) {
				section.Items = append(section.Items, it)
			}
		}
		if len(section.Items) > 0 {
			view.Sections = append(view.Sections, section)
		}
		return view
	}

	byCategory := make(map[string][]*domain.MenuItem)
	for _, it := range items {
		if !matches(it) {
			continue
		}
		if filter.Category != FilterAll && it.CategoryID != filter.Category {
			continue
		}
		if filter.Category == FilterAll && it.IsSpecial {
			// Specials leave the grid only on the unfiltered view.
			view.Specials = append(view.Specials, it)
			continue
		}
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	for _, c := range categories {
		if filter.Category != FilterAll && c.ID != filter.Category {
			continue
		}
		if section := byCategory[c.ID]; len(section) > 0 {
			view.Sections = append(view.Sections, &MenuSection{Category: c, Items: section})
		}
	}

	return view
}

// Categories returns the filter choices for a menu: the reserved "all"
// view, a "specials" view when any special exists, then the categories in
// display order.
func Categories(categories []*domain.MenuCategory, items []*domain.MenuItem) []string {
	choices := []string{FilterAll}
	for _, it := range items {
		if it.IsSpecial && it.IsAvailable {
			choices = append(choices, FilterSpecials)
			break
		}
	}
	for _, c := range categories {
		choices = append(choices, c.ID)
	}
	return choices
}
