// Package theme holds the static public-page theme catalog and its resolver.
//
// The catalog is process-wide immutable reference data: a compile-time
// table of descriptors, never mutated after init, with pure lookups over
// it. Restaurants store only a theme id; an absent or unknown id falls
// back to the first catalog entry, deterministically, since the fallback
// decides the entire rendered palette.
package theme

// Palette holds the color tokens of a theme.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"text_muted"`
}

// Gradients holds the gradient tokens of a theme.
type Gradients struct {
	Hero string `json:"hero"`
	Card string `json:"card"`
}

// Fonts holds the font family tokens of a theme.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Effects holds the surface effect tokens of a theme.
type Effects struct {
	Shadow   string `json:"shadow"`
	Blur     string `json:"blur"`
	Rounding string `json:"rounding"`
}

// Theme is one catalog entry: a named bundle of tokens applied uniformly
// to a restaurant's public page.
type Theme struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Palette   Palette   `json:"palette"`
	Gradients Gradients `json:"gradients"`
	Fonts     Fonts     `json:"fonts"`
	Effects   Effects   `json:"effects"`
}

// Resolve maps a stored theme id to a catalog entry. Empty or unknown ids
// fall back to the first entry; Resolve never returns nil.
func Resolve(id string) *Theme {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return &Catalog[0]
}

// IDs returns the catalog ids in stable order, for admin dropdowns.
func IDs() []string {
	ids := make([]string, len(Catalog))
	for i := range Catalog {
		ids[i] = Catalog[i].ID
	}
	return ids
}
