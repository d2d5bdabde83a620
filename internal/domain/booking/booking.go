package booking

import "time"

// Booking is a stay request stored in the "booking" collection.
// PropertyID references a property by its string identifier; the
// reference is deliberately not checked against the property
// collection, and TotalPrice is caller-supplied and never recomputed.
// TotalPrice is a pointer so an absent field fails presence validation
// instead of silently storing 0.
type Booking struct {
	PropertyID string    `json:"property_id" bson:"property_id" validate:"required"`
	GuestName  string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestEmail string    `json:"guest_email" bson:"guest_email" validate:"required,email"`
	CheckIn    string    `json:"check_in" bson:"check_in" validate:"required"`
	CheckOut   string    `json:"check_out" bson:"check_out" validate:"required"`
	Guests     int       `json:"guests" bson:"guests" validate:"required,gte=1"`
	TotalPrice *float64  `json:"total_price" bson:"total_price" validate:"required,gte=0"`
	CreatedAt  time.Time `json:"-" bson:"created_at,omitempty"`
}
