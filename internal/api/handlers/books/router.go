package books

import (
	"database/sql"
	"net/http"
)

const allowBooks = "GET, POST, PUT, DELETE, OPTIONS"

func Handler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.PathValue("id") == "" {
				handleList(db, w, r)
				return
			}
			handleGet(db, w, r)

		case http.MethodPost:
			handleCreate(db, w, r)

		case http.MethodPut:
			handleUpdate(db, w, r)

		case http.MethodDelete:
			handleDelete(db, w, r)

		default:
			w.Header().Set("Allow", allowBooks)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
