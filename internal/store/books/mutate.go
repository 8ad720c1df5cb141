package books

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

func Insert(ctx context.Context, db *sql.DB, dto CreateBookDTO) (Book, error) {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	row := db.QueryRowContext(ctx, `
		INSERT INTO books (title, author, status, rating, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookColumns,
		dto.Title, dto.Author, dto.Status, dto.Rating, dto.Notes)
	return scanBook(row)
}

// Patch applies only the provided fields and bumps updated_at. An empty DTO
// is a no-op read, so repeated empty PUTs leave the row untouched.
func Patch(ctx context.Context, db *sql.DB, id int64, dto UpdateBookDTO) (Book, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}

	if dto.Title != nil {
		add("title", *dto.Title)
	}
	if dto.Author != nil {
		add("author", *dto.Author)
	}
	if dto.Status != nil {
		add("status", *dto.Status)
	}
	if dto.Rating != nil {
		add("rating", *dto.Rating)
	}
	if dto.Notes != nil {
		add("notes", *dto.Notes)
	}

	if len(set) == 0 {
		return FetchByID(ctx, db, id)
	}

	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	set = append(set, "updated_at = now()")
	args = append(args, id)
	q := `UPDATE books SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + bookColumns

	row := db.QueryRowContext(ctx, q, args...)
	return scanBook(row)
}

func Delete(ctx context.Context, db *sql.DB, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, stmtTimeout)
	defer cancel()

	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
