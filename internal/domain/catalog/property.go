package catalog

import "time"

// Host is the contact embedded in every property. It has no identity
// of its own.
type Host struct {
	Name  string  `json:"name" bson:"name" validate:"required"`
	Email string  `json:"email" bson:"email" validate:"required,email"`
	Phone *string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Property is a rentable listing stored in the "property" collection.
// The identifier is assigned by the store on insert and lives outside
// the struct; documents read back carry it as "_id". Numeric fields
// whose zero value is legal are pointers so an absent field fails
// presence validation instead of silently storing 0.
type Property struct {
	Title         string    `json:"title" bson:"title" validate:"required"`
	Description   *string   `json:"description,omitempty" bson:"description,omitempty"`
	PropertyType  string    `json:"property_type" bson:"property_type" validate:"required"`
	Location      string    `json:"location" bson:"location" validate:"required"`
	Country       string    `json:"country" bson:"country" validate:"required"`
	PricePerNight *float64  `json:"price_per_night" bson:"price_per_night" validate:"required,gte=0"`
	MaxGuests     int       `json:"max_guests" bson:"max_guests" validate:"required,gte=1"`
	Bedrooms      *int      `json:"bedrooms" bson:"bedrooms" validate:"required,gte=0"`
	Bathrooms     *int      `json:"bathrooms" bson:"bathrooms" validate:"required,gte=0"`
	Amenities     []string  `json:"amenities" bson:"amenities"`
	Images        []string  `json:"images" bson:"images"`
	Rating        *float64  `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Host          Host      `json:"host" bson:"host" validate:"required"`
	CreatedAt     time.Time `json:"-" bson:"created_at,omitempty"`
}

// PropertyTypes lists the known values of the open property_type enum.
// Unknown values are accepted; this is documentation, not validation.
var PropertyTypes = []string{"villa", "farmhouse", "cottage", "mansion"}
