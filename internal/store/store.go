// Package store defines the document store contract shared by the
// mongo and in-memory backends. Operations are single-shot: no
// transactions, no internal retries.
package store

import (
	"context"
	"errors"

	"villastay/internal/domain/catalog"
)

// Collection names used by the rental API.
const (
	PropertyCollection = "property"
	BookingCollection  = "booking"
)

var (
	// ErrUnavailable means no connection was ever configured. It is
	// permanent for the process lifetime, not transient.
	ErrUnavailable = errors.New("store: not configured")
	// ErrNotFound means the identifier was well formed but no
	// document carries it.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidID means the identifier is not syntactically valid.
	// Callers map it to a client error, never a server error.
	ErrInvalidID = errors.New("store: invalid document id")
)

// Gateway is the single-shot document store contract. Find returns
// documents in store-default order, truncated to limit. Any fault not
// covered by a sentinel above wraps the backend error and is safe for
// the client to retry.
type Gateway interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter catalog.SearchFilter, limit int) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Count(ctx context.Context, collection string) (int64, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Unavailable satisfies Gateway for processes started without a
// connection string. Every operation fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Insert(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Find(context.Context, string, catalog.SearchFilter, int) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Get(context.Context, string, string) (Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Count(context.Context, string) (int64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Collections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Ping(context.Context) error {
	return ErrUnavailable
}

var _ Gateway = Unavailable{}
