package books

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const (
	// Every statement carries a bounded timeout; a slow store surfaces as a
	// transient failure to the caller instead of hanging the request.
	stmtTimeout = 3 * time.Second
	pingTimeout = 2 * time.Second
)

const bookColumns = `id, title, author, status, rating, notes, created_at, updated_at`

func scanBook(row *sql.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Status, &b.Rating, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func FetchByID(ctx context.Context, db *sql.DB, id int64) (Book, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	row := db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	return scanBook(row)
}

// List returns every book in ascending id order. The empty result is a
// non-nil slice so it encodes as [] rather than null.
func List(ctx context.Context, db *sql.DB) ([]Book, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Status, &b.Rating, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
