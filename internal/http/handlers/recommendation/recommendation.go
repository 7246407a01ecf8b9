// Package recommendation contains the HTTP handler for the program
// recommendation endpoint. Unlike the CRUD handlers it depends on the
// recommend.Recommender rather than raw storage — the handler's only
// jobs are parameter parsing and error-to-status mapping.
package recommendation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/metaapply/metaapply-api/internal/recommend"
	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// Get handles GET /api/recommendations/{student_id}?limit=<int>
//
// Path parameter: {student_id} — a 24-character hex ObjectID.
// Query parameter: limit — optional, defaults to 10; limit <= 0 yields
// an empty array (clamped, never an error).
//
// Success response (200 OK): a JSON array of programs, each with its
// computed "score", ordered best-first, at most limit elements.
//
// Error responses:
//
//	400 {"detail": "Invalid ID format"}  — malformed student_id
//	400 envelope                         — non-integer limit
//	404 {"detail": "Student not found"}  — well-formed but unknown id
//	500 envelope                         — store failure
//
// ─────────────────────────────────────────────────────────────────────────────
func Get(recommender *recommend.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := r.PathValue("student_id")

		limit := recommend.DefaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(errors.New("invalid limit: must be an integer")))
				return
			}
			limit = parsed
		}

		slog.Info("recommending programs",
			slog.String("student_id", studentID),
			slog.Int("limit", limit),
		)

		recommendations, err := recommender.Recommend(r.Context(), studentID, limit)
		if errors.Is(err, storage.ErrInvalidID) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.NewDetail("Invalid ID format"))
			return
		}
		if errors.Is(err, storage.ErrStudentNotFound) {
			response.WriteJSON(w, http.StatusNotFound,
				response.NewDetail("Student not found"))
			return
		}
		if err != nil {
			slog.Error("error recommending programs",
				slog.String("student_id", studentID),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, recommendations)
	}
}
