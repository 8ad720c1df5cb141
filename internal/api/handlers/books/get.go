package books

import (
	"database/sql"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
)

func handleGet(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		notFound(w, r)
		return
	}

	b, err := storebooks.FetchByID(r.Context(), db, id)
	if err != nil {
		writeStoreError(w, r, err, "get")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, b)
}
