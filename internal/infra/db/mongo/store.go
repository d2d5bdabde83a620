package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villastay/internal/domain/catalog"
	"villastay/internal/store"
)

// Store implements store.Gateway on a mongo database. Every operation
// runs under the configured timeout so a stalled connection surfaces
// as an error instead of hanging the request.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewStore(client *Client, timeout time.Duration) *Store {
	return &Store{db: client.DB, timeout: timeout}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("mongo: insert %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter catalog.SearchFilter, limit int) ([]store.Document, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.db.Collection(collection).Find(ctx, BuildPropertyFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: find %s: %w", collection, err)
	}
	var docs []store.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode %s: %w", collection, err)
	}
	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	var doc store.Document
	if err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("mongo: get %s: %w", collection, err)
	}
	return doc, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo: count %s: %w", collection, err)
	}
	return count, nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: list collections: %w", err)
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

var _ store.Gateway = (*Store)(nil)
