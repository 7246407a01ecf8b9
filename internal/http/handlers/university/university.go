// Package university contains the HTTP handlers for the University
// resource (create + filtered list), in the same factory pattern as the
// student handlers.
package university

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
	"github.com/metaapply/metaapply-api/internal/utils/response"
)

const listLimit = 100

// Create handles POST /api/universities.
// 201 with {"id": "<hex>"} on success.
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a university")

		var university types.University

		err := json.NewDecoder(r.Body).Decode(&university)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(university); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		id, err := store.CreateUniversity(r.Context(), university)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("university created", slog.String("id", id))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// GetList handles GET /api/universities?country=.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.UniversityFilter{
			Country: r.URL.Query().Get("country"),
		}

		universities, err := store.FindUniversities(r.Context(), filter, listLimit)
		if err != nil {
			slog.Error("error listing universities", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, universities)
	}
}
