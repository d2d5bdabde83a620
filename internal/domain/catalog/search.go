package catalog

import "strings"

// SearchFilter captures the optional catalog search constraints. A
// zero-value filter matches everything. Numeric bounds are pointers so
// that an absent parameter produces no constraint at all instead of a
// constraint against zero.
type SearchFilter struct {
	// Query matches when title, location or country contains the
	// value as a case-insensitive substring.
	Query string
	// PropertyType requires an exact whole-field match, ignoring case.
	PropertyType string
	// MinPrice and MaxPrice bound price_per_night inclusively.
	MinPrice *float64
	MaxPrice *float64
	// MinBedrooms requires bedrooms >= value.
	MinBedrooms *int
	// MinGuests requires max_guests >= value.
	MinGuests *int
	// Amenity requires the amenities list to contain this exact,
	// case-sensitive element.
	Amenity string
}

// Normalized returns a sanitized copy of the filter. Amenity is left
// untouched: it matches list elements verbatim.
func (f SearchFilter) Normalized() SearchFilter {
	normalized := f
	normalized.Query = strings.TrimSpace(normalized.Query)
	normalized.PropertyType = strings.TrimSpace(normalized.PropertyType)
	return normalized
}

// IsZero reports whether the filter carries no constraints.
func (f SearchFilter) IsZero() bool {
	return f.Query == "" &&
		f.PropertyType == "" &&
		f.MinPrice == nil &&
		f.MaxPrice == nil &&
		f.MinBedrooms == nil &&
		f.MinGuests == nil &&
		f.Amenity == ""
}
