package memory

import (
	"context"
	"errors"
	"testing"

	"villastay/internal/domain/catalog"
	"villastay/internal/store"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func sampleProperty(title, propertyType, location string, price float64, bedrooms, guests int, amenities []string) catalog.Property {
	return catalog.Property{
		Title:         title,
		PropertyType:  propertyType,
		Location:      location,
		Country:       "India",
		PricePerNight: floatPtr(price),
		MaxGuests:     guests,
		Bedrooms:      intPtr(bedrooms),
		Bathrooms:     intPtr(1),
		Amenities:     amenities,
		Host:          catalog.Host{Name: "Host", Email: "host@example.com"},
	}
}

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ctx := context.Background()
	props := []catalog.Property{
		sampleProperty("Skyline Luxe Villa", "villa", "Mumbai", 420, 4, 8, []string{"Pool", "WiFi"}),
		sampleProperty("Serene Farm Retreat", "farmhouse", "Pune", 220, 3, 6, []string{"Bonfire", "WiFi"}),
		sampleProperty("Forest Edge Cottage", "cottage", "Coorg", 160, 2, 4, []string{"Fireplace"}),
		sampleProperty("Villalike Loft", "villalike", "Goa", 300, 2, 4, []string{"pool"}),
	}
	for _, p := range props {
		if _, err := s.Insert(ctx, store.PropertyCollection, p); err != nil {
			t.Fatalf("insert %q: %v", p.Title, err)
		}
	}
	return s
}

func TestInsertThenGetRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	prop := sampleProperty("Skyline Luxe Villa", "villa", "Mumbai", 420, 4, 8, []string{"Pool"})

	id, err := s.Insert(ctx, store.PropertyCollection, prop)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	doc, err := s.Get(ctx, store.PropertyCollection, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc["title"] != prop.Title {
		t.Errorf("title = %v, want %q", doc["title"], prop.Title)
	}
	if doc["property_type"] != prop.PropertyType {
		t.Errorf("property_type = %v, want %q", doc["property_type"], prop.PropertyType)
	}
	if doc["price_per_night"] != *prop.PricePerNight {
		t.Errorf("price_per_night = %v, want %v", doc["price_per_night"], *prop.PricePerNight)
	}
}

func TestGetInvalidID(t *testing.T) {
	s := NewStore()
	_, err := s.Get(context.Background(), store.PropertyCollection, "not-an-id")
	if !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID", err)
	}
}

func TestGetWellFormedButAbsent(t *testing.T) {
	s := NewStore()
	_, err := s.Get(context.Background(), store.PropertyCollection, "64b5fc2e8a1f4c3d2e1b0a99")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFindNoFilterMatchesAll(t *testing.T) {
	s := seedStore(t)
	docs, err := s.Find(context.Background(), store.PropertyCollection, catalog.SearchFilter{}, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 4 {
		t.Errorf("got %d documents, want 4", len(docs))
	}
}

func TestFindLimitTruncates(t *testing.T) {
	s := seedStore(t)
	docs, err := s.Find(context.Background(), store.PropertyCollection, catalog.SearchFilter{}, 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}

func TestFindFreeTextIsCaseInsensitiveSubstring(t *testing.T) {
	s := seedStore(t)
	docs, err := s.Find(context.Background(), store.PropertyCollection, catalog.SearchFilter{Query: "FARM"}, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 || docs[0]["title"] != "Serene Farm Retreat" {
		t.Errorf("query FARM matched %v, want Serene Farm Retreat only", titles(docs))
	}
}

func TestFindPropertyTypeExactIgnoreCase(t *testing.T) {
	s := seedStore(t)
	docs, err := s.Find(context.Background(), store.PropertyCollection, catalog.SearchFilter{PropertyType: "VILLA"}, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	// "villalike" must not match even though it contains "villa".
	if len(docs) != 1 || docs[0]["title"] != "Skyline Luxe Villa" {
		t.Errorf("type VILLA matched %v, want Skyline Luxe Villa only", titles(docs))
	}
}

func TestFindAmenityIsCaseSensitiveExactElement(t *testing.T) {
	s := seedStore(t)
	docs, err := s.Find(context.Background(), store.PropertyCollection, catalog.SearchFilter{Amenity: "Pool"}, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	// The loft lists "pool"; only exact "Pool" may match.
	if len(docs) != 1 || docs[0]["title"] != "Skyline Luxe Villa" {
		t.Errorf("amenity Pool matched %v, want Skyline Luxe Villa only", titles(docs))
	}
}

func TestFindPriceAndMinimumBounds(t *testing.T) {
	s := seedStore(t)
	filter := catalog.SearchFilter{
		MinPrice:    floatPtr(200),
		MaxPrice:    floatPtr(450),
		MinBedrooms: intPtr(3),
		MinGuests:   intPtr(6),
	}
	docs, err := s.Find(context.Background(), store.PropertyCollection, filter, 0)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, doc := range docs {
		price, _ := docFloat(doc, "price_per_night")
		if price < 200 || price > 450 {
			t.Errorf("%v violates price bounds: %v", doc["title"], price)
		}
		bedrooms, _ := docFloat(doc, "bedrooms")
		if bedrooms < 3 {
			t.Errorf("%v violates bedrooms minimum: %v", doc["title"], bedrooms)
		}
		guests, _ := docFloat(doc, "max_guests")
		if guests < 6 {
			t.Errorf("%v violates guests minimum: %v", doc["title"], guests)
		}
	}
	if len(docs) != 2 {
		t.Errorf("got %v, want the villa and the farmhouse", titles(docs))
	}
}

func TestCountAndCollections(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	count, err := s.Count(ctx, store.PropertyCollection)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	names, err := s.Collections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if len(names) != 1 || names[0] != store.PropertyCollection {
		t.Errorf("collections = %v, want [property]", names)
	}
}

func titles(docs []store.Document) []any {
	out := make([]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc["title"])
	}
	return out
}
