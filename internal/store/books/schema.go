package books

import (
	"context"
	"database/sql"
)

// Schema is owned here: one table, created idempotently on startup.
// Status and rating constraints are enforced both in validate and by the
// CHECK constraints, so a bug upstream cannot write a malformed row.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS books (
	id         BIGSERIAL PRIMARY KEY,
	title      VARCHAR(255) NOT NULL,
	author     VARCHAR(255) NOT NULL,
	status     VARCHAR(20)  NOT NULL DEFAULT 'to-read'
	           CHECK (status IN ('to-read', 'reading', 'completed')),
	rating     INTEGER CHECK (rating BETWEEN 1 AND 5),
	notes      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// Ping does a trivial round trip so the health endpoint exercises a real
// query, not just the pool.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	var one int
	return db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}
