package domain

// Profile is the aggregate view model for one public page load: the
// restaurant joined with all of its dependent collections. It is assembled
// once per load and read-only afterwards; filter and carousel state live in
// the page layer, never here.
//
// Location and Features are nil until the owner first saves those forms.
// Hours holds zero or seven rows ordered by weekday.
type Profile struct {
	Restaurant *Restaurant     `json:"restaurant"`
	Location   *Location       `json:"location,omitempty"`
	Hours      []*OpeningHours `json:"hours"`
	Features   *Features       `json:"features,omitempty"`
	Categories []*MenuCategory `json:"categories"`
	Items      []*MenuItem     `json:"items"`
	Images     []*GalleryImage `json:"images"`
	Offers     []*Offer        `json:"offers"`
}

// HoursSet reports whether the restaurant has a complete weekly schedule.
// Zero rows means "hours unset"; the store guarantees no partial sets.
func (p *Profile) HoursSet() bool {
	return len(p.Hours) == 7
}
