package router

import (
	"database/sql"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/handlers"
	"github.com/5w1tchy/reading-list-api/internal/api/handlers/books"
)

func Router(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	// Root
	mux.HandleFunc("GET /", handlers.RootHandler)

	// Health
	mux.Handle("GET /health", handlers.Health(db))

	// Books (method-specific + 1.22 patterns)
	mux.Handle("GET /books", books.Handler(db))         // list
	mux.Handle("POST /books", books.Handler(db))        // create
	mux.Handle("GET /books/{id}", books.Handler(db))    // get
	mux.Handle("PUT /books/{id}", books.Handler(db))    // partial update
	mux.Handle("DELETE /books/{id}", books.Handler(db)) // delete
	mux.Handle("OPTIONS /books", books.Handler(db))     // preflight
	mux.Handle("OPTIONS /books/{id}", books.Handler(db))

	return mux
}
