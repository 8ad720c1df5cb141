package books

import (
	"database/sql"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
)

func handleDelete(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		notFound(w, r)
		return
	}

	if err := storebooks.Delete(r.Context(), db, id); err != nil {
		writeStoreError(w, r, err, "delete")
		return
	}

	// Deletion is permanent; no response body.
	httpx.NoContent(w)
}
