package service

import (
	"context"

	"spa_booking/internal/store"
)

// countingStore wraps a Store and counts every call that reaches it, so tests
// can assert that validation failures issue no store call at all.
type countingStore struct {
	store.Store
	calls int
}

func newCountingStore() *countingStore {
	return &countingStore{Store: store.NewMemory()}
}

func (c *countingStore) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	c.calls++
	return c.Store.Insert(ctx, collection, doc)
}

func (c *countingStore) ListAll(ctx context.Context, collection string) ([]store.Record, error) {
	c.calls++
	return c.Store.ListAll(ctx, collection)
}

func (c *countingStore) FindWhere(ctx context.Context, collection, field string, value any) ([]store.Record, error) {
	c.calls++
	return c.Store.FindWhere(ctx, collection, field, value)
}

func (c *countingStore) UpdateByID(ctx context.Context, collection, id string, patch store.Document) error {
	c.calls++
	return c.Store.UpdateByID(ctx, collection, id, patch)
}

func (c *countingStore) DeleteByID(ctx context.Context, collection, id string) error {
	c.calls++
	return c.Store.DeleteByID(ctx, collection, id)
}
