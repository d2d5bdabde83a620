package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"villastay/internal/domain/catalog"
)

// BuildPropertyFilter translates a catalog.SearchFilter into the query
// document executed against the property collection. All supplied
// constraints are ANDed; an empty filter yields an empty document,
// which matches every property. User input is regex-quoted so it can
// only ever match literally.
func BuildPropertyFilter(f catalog.SearchFilter) bson.M {
	f = f.Normalized()
	flt := bson.M{}
	if f.Query != "" {
		pattern := regexp.QuoteMeta(f.Query)
		flt["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"location": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"country": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}
	if f.PropertyType != "" {
		// Anchored so "villa" cannot match "villalike".
		flt["property_type"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(f.PropertyType) + "$",
			Options: "i",
		}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		flt["price_per_night"] = price
	}
	if f.MinBedrooms != nil {
		flt["bedrooms"] = bson.M{"$gte": *f.MinBedrooms}
	}
	if f.MinGuests != nil {
		flt["max_guests"] = bson.M{"$gte": *f.MinGuests}
	}
	if f.Amenity != "" {
		flt["amenities"] = bson.M{"$in": bson.A{f.Amenity}}
	}
	return flt
}
