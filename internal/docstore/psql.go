package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Backend = (*PsqlBackend)(nil)

// json (not jsonb) keeps the object key order, tab and thread order depend on it
const createDocumentTable = `
	CREATE TABLE IF NOT EXISTS workout_document (
		name       TEXT PRIMARY KEY,
		body       JSON NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

type PsqlBackend struct {
	db *pgxpool.Pool
}

// NewPsqlBackend creates the documents table if it is not there yet.
func NewPsqlBackend(ctx context.Context, db *pgxpool.Pool) (*PsqlBackend, error) {
	if _, err := db.Exec(ctx, createDocumentTable); err != nil {
		return nil, fmt.Errorf("create document table: %w", err)
	}
	return &PsqlBackend{
		db: db,
	}, nil
}

func (b *PsqlBackend) Get(ctx context.Context, name string) ([]byte, error) {
	var body string
	err := b.db.QueryRow(
		ctx,
		`SELECT body::text FROM workout_document WHERE name = $1;`,
		name,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (b *PsqlBackend) Put(ctx context.Context, name string, data []byte) error {
	_, err := b.db.Exec(
		ctx,
		`
			INSERT INTO workout_document (name, body, updated_at)
			VALUES ($1, $2::json, now())
			ON CONFLICT (name) DO UPDATE
			SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at;`,
		name, string(data),
	)
	return err
}
