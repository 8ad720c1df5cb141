package books

import (
	"errors"
	"log"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/apperr"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
)

// writeStoreError is the single translator from store outcomes to HTTP
// statuses: not-found 404, unreachable/timeout 503, constraint violations
// 400 (validation should have caught them, but they are not swallowed),
// everything else 500 with the detail kept in the log.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, storebooks.ErrNotFound):
		apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
	case apperr.IsUnavailable(err):
		log.Printf("[books] %s: store unavailable: %v", op, err)
		apperr.WriteStatus(w, r, http.StatusServiceUnavailable, "Service Unavailable", "database unavailable")
	default:
		if p, ok := apperr.FromPG(err); ok {
			if p.Status >= 500 {
				log.Printf("[books] %s: %v", op, err)
			}
			apperr.Write(w, r, p)
			return
		}
		log.Printf("[books] %s: %v", op, err)
		apperr.WriteStatus(w, r, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, detail string) {
	apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad Request", detail)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apperr.WriteStatus(w, r, http.StatusNotFound, "Not Found", "book not found")
}
