package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id does not exist in the collection.
var ErrNotFound = errors.New("document not found")

// Document is a schemaless record as persisted in a collection.
type Document map[string]any

// Record pairs a stored document with its store-assigned id.
type Record struct {
	ID   string
	Data Document
}

// Store defines collection-scoped CRUD over a document database.
// Operations carry no retry or timeout policy of their own: a single
// backend failure is surfaced directly to the caller.
type Store interface {
	// Insert adds a document and returns its generated id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// ListAll fetches the full collection as a one-time snapshot.
	ListAll(ctx context.Context, collection string) ([]Record, error)
	// FindWhere returns the documents whose field equals value. Equality only,
	// no compound queries.
	FindWhere(ctx context.Context, collection, field string, value any) ([]Record, error)
	// UpdateByID merges patch fields into an existing document.
	// Returns ErrNotFound if the id is absent.
	UpdateByID(ctx context.Context, collection, id string, patch Document) error
	// DeleteByID removes a document permanently.
	// Returns ErrNotFound if the id is absent.
	DeleteByID(ctx context.Context, collection, id string) error
}
