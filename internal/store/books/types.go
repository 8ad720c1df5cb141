package books

import (
	"time"
)

// Book is the single stored entity. Rating and Notes are nullable in the
// schema, so they marshal as JSON null when unset.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	Rating    *int      `json:"rating"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookDTO struct {
	Title  string
	Author string
	Status string
	Rating *int
	Notes  *string
}

// UpdateBookDTO carries a partial update. nil means "field not provided,
// keep the stored value".
type UpdateBookDTO struct {
	Title  *string
	Author *string
	Status *string
	Rating *int
	Notes  *string
}
