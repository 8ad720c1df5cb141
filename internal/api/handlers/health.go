package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/5w1tchy/reading-list-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/reading-list-api/internal/store/books"
)

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports whether the store answers a trivial round-trip query
// within its bounded timeout.
func Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := storebooks.Ping(r.Context(), db); err != nil {
			log.Printf("[health] database ping failed: %v", err)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{
				Status:   "unhealthy",
				Database: "disconnected",
			})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthStatus{
			Status:   "healthy",
			Database: "connected",
		})
	}
}
