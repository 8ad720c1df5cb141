package books

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
	"github.com/5w1tchy/reading-list-api/internal/validate"
)

type createReq struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
	Notes  *string `json:"notes"`
}

func handleCreate(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// Unknown fields are ignored, so clients may send extra keys freely.
	var body createReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, r, "invalid JSON body")
		return
	}

	title, err := validate.RequireBounded("title", body.Title, 1, 255)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	author, err := validate.RequireBounded("author", body.Author, 1, 255)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}

	// Only an absent status defaults; an explicit value, even "", must
	// pass the membership check.
	status := validate.DefaultStatus
	if body.Status != nil {
		if status, err = validate.Status(*body.Status); err != nil {
			badRequest(w, r, err.Error())
			return
		}
	}
	if body.Rating != nil {
		if err := validate.Rating(*body.Rating); err != nil {
			badRequest(w, r, err.Error())
			return
		}
	}

	dto := storebooks.CreateBookDTO{
		Title:  title,
		Author: author,
		Status: status,
		Rating: body.Rating,
		Notes:  body.Notes,
	}
	b, err := storebooks.Insert(r.Context(), db, dto)
	if err != nil {
		writeStoreError(w, r, err, "create")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, b)
}
