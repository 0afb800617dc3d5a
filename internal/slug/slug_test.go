package slug

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "SPICE GARDEN", "spice-garden"},
		{"single word", "Bistro", "bistro"},
		{"already slugified", "spice-garden", "spice-garden"},

		// Whitespace handling
		{"trim whitespace", "  Spice Garden  ", "spice-garden"},
		{"multiple spaces", "Tony's   Pizza!! Place", "tonys-pizza-place"},
		{"tabs", "Spice\tGarden", "spice-garden"},

		// Special characters
		{"apostrophe removal", "Mama's Kitchen", "mamas-kitchen"},
		{"punctuation removal", "Grill & Chill!", "grill-chill"},
		{"accented characters", "Café Olé", "cafe-ole"},
		{"ampersand with numbers", "24/7 Diner", "247-diner"},

		// Hyphen handling
		{"existing hyphens kept", "Farm-to-Table", "farm-to-table"},
		{"hyphen runs collapsed", "bar--and--grill", "bar-and-grill"},
		{"leading and trailing", "-The Spot-", "the-spot"},

		// Edge cases
		{"empty string", "", ""},
		{"only punctuation", "!@#$%", ""},
		{"only spaces", "   ", ""},
		{"numbers allowed", "Pizza 101", "pizza-101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// Slugify must be stable: applying it to its own output is a no-op, so the
// admin-generated link and the public lookup agree on the same string.
func TestSlugifyStable(t *testing.T) {
	names := []string{
		"Tony's   Pizza!! Place",
		"Spice Garden",
		"Café Olé",
		"Farm-to-Table Co.",
		"24/7 Diner",
	}

	for _, name := range names {
		once := Slugify(name)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not stable for %q: first %q, second %q", name, once, twice)
		}
	}
}

func TestSearchable(t *testing.T) {
	tests := []struct {
		slug     string
		expected string
	}{
		{"spice-garden", "spice garden"},
		{"tonys-pizza-place", "tonys pizza place"},
		{"bistro", "bistro"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Searchable(tt.slug); got != tt.expected {
			t.Errorf("Searchable(%q) = %q, want %q", tt.slug, got, tt.expected)
		}
	}
}

// Round-trip contract: a stored name slugifies to a path segment whose
// searchable form matches the name case-insensitively as a substring.
func TestSlugRoundTrip(t *testing.T) {
	if got := Searchable(Slugify("Spice Garden")); got != "spice garden" {
		t.Errorf("Searchable(Slugify(%q)) = %q, want %q", "Spice Garden", got, "spice garden")
	}
}
