package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of *pgxpool.Pool the store needs. It exists so the
// pool can be replaced by a pgxmock pool in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ PgxIface = (*pgxpool.Pool)(nil)

type postgresStore struct {
	db PgxIface
}

// NewPostgres creates a Store backed by the documents table in PostgreSQL.
func NewPostgres(db PgxIface) Store {
	return &postgresStore{db: db}
}

// Insert adds a document with a client-generated uuid as its id.
func (s *postgresStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	sql := `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)`
	if _, err := s.db.Exec(ctx, sql, collection, id, string(data)); err != nil {
		return "", fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}
	return id, nil
}

// ListAll fetches the full collection as a snapshot, in insertion order.
func (s *postgresStore) ListAll(ctx context.Context, collection string) ([]Record, error) {
	sql := `SELECT id, data FROM documents WHERE collection = $1 ORDER BY created_at`
	rows, err := s.db.Query(ctx, sql, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	return scanRecords(rows, collection)
}

// FindWhere returns the documents whose field equals value. The value is
// compared against the stored JSON, so strings, numbers and booleans all work.
func (s *postgresStore) FindWhere(ctx context.Context, collection, field string, value any) ([]Record, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter value: %w", err)
	}

	sql := `SELECT id, data FROM documents WHERE collection = $1 AND data -> $2 = $3::jsonb ORDER BY created_at`
	rows, err := s.db.Query(ctx, sql, collection, field, string(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s by %s: %w", collection, field, err)
	}
	defer rows.Close()

	return scanRecords(rows, collection)
}

// UpdateByID merges patch fields into an existing document (JSONB || merge).
func (s *postgresStore) UpdateByID(ctx context.Context, collection, id string, patch Document) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	sql := `UPDATE documents SET data = data || $3::jsonb WHERE collection = $1 AND id = $2`
	ct, err := s.db.Exec(ctx, sql, collection, id, string(data))
	if err != nil {
		return fmt.Errorf("failed to update document %s in %s: %w", id, collection, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a document permanently.
func (s *postgresStore) DeleteByID(ctx context.Context, collection, id string) error {
	sql := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	ct, err := s.db.Exec(ctx, sql, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s from %s: %w", id, collection, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecords(rows pgx.Rows, collection string) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s in %s: %w", id, collection, err)
		}
		records = append(records, Record{ID: id, Data: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return records, nil
}
