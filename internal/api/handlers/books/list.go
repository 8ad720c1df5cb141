package books

import (
	"database/sql"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
)

func handleList(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	list, err := storebooks.List(r.Context(), db)
	if err != nil {
		writeStoreError(w, r, err, "list")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, list)
}
