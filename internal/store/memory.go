package store

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
	order       map[string][]string // insertion order per collection
}

// NewMemory builds an in-memory Store. It backs the server when no database is
// configured and stands in for PostgreSQL in tests.
func NewMemory() Store {
	return &memoryStore{
		collections: make(map[string]map[string]Document),
		order:       make(map[string][]string),
	}
}

func (s *memoryStore) Insert(_ context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]Document)
	}
	id := uuid.NewString()
	s.collections[collection][id] = cloneDocument(doc)
	s.order[collection] = append(s.order[collection], id)
	return id, nil
}

func (s *memoryStore) ListAll(_ context.Context, collection string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []Record
	for _, id := range s.order[collection] {
		doc, ok := s.collections[collection][id]
		if !ok {
			continue // deleted
		}
		records = append(records, Record{ID: id, Data: cloneDocument(doc)})
	}
	return records, nil
}

func (s *memoryStore) FindWhere(_ context.Context, collection, field string, value any) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []Record
	for _, id := range s.order[collection] {
		doc, ok := s.collections[collection][id]
		if !ok {
			continue
		}
		if got, ok := doc[field]; ok && reflect.DeepEqual(got, value) {
			records = append(records, Record{ID: id, Data: cloneDocument(doc)})
		}
	}
	return records, nil
}

func (s *memoryStore) UpdateByID(_ context.Context, collection, id string, patch Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range patch {
		doc[k] = v
	}
	return nil
}

func (s *memoryStore) DeleteByID(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

// cloneDocument keeps callers from mutating stored state through returned records.
func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
