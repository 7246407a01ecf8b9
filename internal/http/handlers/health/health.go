// Package health contains the service health endpoint: a liveness
// answer for the API itself plus a reachability probe of the document
// store.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/metaapply/metaapply-api/internal/utils/response"
)

// Store is the slice of the storage backend the health check needs.
// The mongo implementation satisfies it; tests pass a stub.
type Store interface {
	Ping(ctx context.Context) error
	DatabaseName() string
}

// Status is the health response body.
type Status struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	DatabaseName string `json:"database_name,omitempty"`
}

// Get handles GET /api/health.
//
// 200 when the store answers a ping, 503 when it does not — the API
// process itself is up either way.
func Get(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			slog.Error("health check: store unreachable", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, Status{
				Status:   "ok",
				Database: "unreachable",
			})
			return
		}

		response.WriteJSON(w, http.StatusOK, Status{
			Status:       "ok",
			Database:     "connected",
			DatabaseName: store.DatabaseName(),
		})
	}
}
