package books

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
	"github.com/5w1tchy/reading-list-api/internal/validate"
)

type updateReq struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
	Notes  *string `json:"notes"`
}

// handleUpdate is a partial update: only provided fields overwrite, each
// validated by the same rules as create. An empty body is a no-op that
// returns the stored book.
func handleUpdate(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := parseID(r.PathValue("id"))
	if !ok {
		notFound(w, r)
		return
	}

	var body updateReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, r, "invalid JSON body")
		return
	}

	dto := storebooks.UpdateBookDTO{Rating: body.Rating, Notes: body.Notes}

	if body.Title != nil {
		title, err := validate.RequireBounded("title", *body.Title, 1, 255)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		dto.Title = &title
	}
	if body.Author != nil {
		author, err := validate.RequireBounded("author", *body.Author, 1, 255)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		dto.Author = &author
	}
	if body.Status != nil {
		status, err := validate.Status(*body.Status)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		dto.Status = &status
	}
	if body.Rating != nil {
		if err := validate.Rating(*body.Rating); err != nil {
			badRequest(w, r, err.Error())
			return
		}
	}

	b, err := storebooks.Patch(r.Context(), db, id, dto)
	if err != nil {
		writeStoreError(w, r, err, "update")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, b)
}
