package handlers

import (
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"service": "reading-list-api",
	})
}
