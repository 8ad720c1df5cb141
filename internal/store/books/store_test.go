package books_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
	"github.com/DATA-DOG/go-sqlmock"
)

var bookCols = []string{"id", "title", "author", "status", "rating", "notes", "created_at", "updated_at"}

func TestInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO books (title, author, status, rating, notes)`,
	)).
		WithArgs("Clean Code", "Robert C. Martin", "to-read", nil, nil).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Clean Code", "Robert C. Martin", "to-read", nil, nil, now, now))

	b, err := storebooks.Insert(t.Context(), db, storebooks.CreateBookDTO{
		Title:  "Clean Code",
		Author: "Robert C. Martin",
		Status: "to-read",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.ID != 1 || b.Status != "to-read" || b.Rating != nil {
		t.Fatalf("unexpected book: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFetchByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, author, status, rating, notes, created_at, updated_at FROM books WHERE id = $1`,
	)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookCols))

	_, err = storebooks.FetchByID(t.Context(), db, 99)
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestList_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, author, status, rating, notes, created_at, updated_at FROM books ORDER BY id`,
	)).WillReturnRows(sqlmock.NewRows(bookCols))

	out, err := storebooks.List(t.Context(), db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestList_Order(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM books ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "A", "a", "to-read", nil, nil, now, now).
			AddRow(2, "B", "b", "completed", 5, "great", now, now))

	out, err := storebooks.List(t.Context(), db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", out)
	}
	if out[1].Rating == nil || *out[1].Rating != 5 {
		t.Fatalf("want rating 5, got %+v", out[1].Rating)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPatch_SingleField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE books SET status = $1, updated_at = now() WHERE id = $2 RETURNING`,
	)).
		WithArgs("completed", int64(1)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Clean Code", "Robert C. Martin", "completed", nil, nil, now, now))

	status := "completed"
	b, err := storebooks.Patch(t.Context(), db, 1, storebooks.UpdateBookDTO{Status: &status})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.Status != "completed" || b.Title != "Clean Code" {
		t.Fatalf("unexpected book: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPatch_EmptyDTOIsReadOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now()
	// No UPDATE is issued for an empty partial payload.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM books WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookCols).
			AddRow(1, "Clean Code", "Robert C. Martin", "to-read", nil, nil, now, now))

	b, err := storebooks.Patch(t.Context(), db, 1, storebooks.UpdateBookDTO{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.ID != 1 || b.Status != "to-read" {
		t.Fatalf("unexpected book: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPatch_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE books SET`)).
		WithArgs("reading", int64(42)).
		WillReturnRows(sqlmock.NewRows(bookCols))

	status := "reading"
	_, err = storebooks.Patch(t.Context(), db, 42, storebooks.UpdateBookDTO{Status: &status})
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := storebooks.Delete(t.Context(), db, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0)) // 0 rows affected

	err = storebooks.Delete(t.Context(), db, 9)
	if !errors.Is(err, storebooks.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := storebooks.Ping(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
