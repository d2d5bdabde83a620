// Package memory implements store.Gateway on process-local maps. It
// backs handler tests and demo runs; documents pass through a bson
// round-trip on insert so identifiers and timestamps come back in the
// same driver types the mongo backend produces.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"villastay/internal/domain/catalog"
	"villastay/internal/store"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]store.Document
}

func NewStore() *Store {
	return &Store{collections: make(map[string][]store.Document)}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("memory: marshal %s: %w", collection, err)
	}
	var rec store.Document
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("memory: unmarshal %s: %w", collection, err)
	}
	id := primitive.NewObjectID()
	rec["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], rec)
	return id.Hex(), nil
}

// Find walks the collection in insertion order and keeps documents
// satisfying every supplied constraint, truncated to limit.
func (s *Store) Find(ctx context.Context, collection string, filter catalog.SearchFilter, limit int) ([]store.Document, error) {
	filter = filter.Normalized()

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []store.Document
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.collections[collection] {
		if doc["_id"] == oid {
			return doc, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func matches(doc store.Document, f catalog.SearchFilter) bool {
	if f.Query != "" && !containsFold(doc, f.Query, "title", "location", "country") {
		return false
	}
	if f.PropertyType != "" {
		value, ok := docString(doc, "property_type")
		if !ok || !strings.EqualFold(value, f.PropertyType) {
			return false
		}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price, ok := docFloat(doc, "price_per_night")
		if !ok {
			return false
		}
		if f.MinPrice != nil && price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			return false
		}
	}
	if f.MinBedrooms != nil {
		bedrooms, ok := docFloat(doc, "bedrooms")
		if !ok || bedrooms < float64(*f.MinBedrooms) {
			return false
		}
	}
	if f.MinGuests != nil {
		guests, ok := docFloat(doc, "max_guests")
		if !ok || guests < float64(*f.MinGuests) {
			return false
		}
	}
	if f.Amenity != "" && !containsElement(doc, "amenities", f.Amenity) {
		return false
	}
	return true
}

func containsFold(doc store.Document, query string, keys ...string) bool {
	needle := strings.ToLower(query)
	for _, key := range keys {
		if value, ok := docString(doc, key); ok {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// containsElement matches list elements verbatim, case included.
func containsElement(doc store.Document, key, want string) bool {
	list, ok := doc[key].(primitive.A)
	if !ok {
		return false
	}
	for _, item := range list {
		if value, ok := item.(string); ok && value == want {
			return true
		}
	}
	return false
}

func docString(doc store.Document, key string) (string, bool) {
	value, ok := doc[key].(string)
	return value, ok
}

func docFloat(doc store.Document, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

var _ store.Gateway = (*Store)(nil)
