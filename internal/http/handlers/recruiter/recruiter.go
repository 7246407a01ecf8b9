// Package recruiter contains the HTTP handlers for the Recruiter
// resource (create + filtered list).
package recruiter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
	"github.com/metaapply/metaapply-api/internal/utils/response"
)

const listLimit = 100

// Create handles POST /api/recruiters.
// New recruiters start unverified unless the payload says otherwise.
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a recruiter")

		var recruiter types.Recruiter

		err := json.NewDecoder(r.Body).Decode(&recruiter)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(recruiter); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		id, err := store.CreateRecruiter(r.Context(), recruiter)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("recruiter created", slog.String("id", id))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// GetList handles GET /api/recruiters?verified=.
// verified accepts strconv.ParseBool forms ("true", "1", ...); absent
// means all recruiters, anything unparseable is a 400.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter types.RecruiterFilter

		if raw := r.URL.Query().Get("verified"); raw != "" {
			verified, err := strconv.ParseBool(raw)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(errors.New("invalid verified: must be a boolean")))
				return
			}
			filter.Verified = &verified
		}

		recruiters, err := store.FindRecruiters(r.Context(), filter, listLimit)
		if err != nil {
			slog.Error("error listing recruiters", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, recruiters)
	}
}
