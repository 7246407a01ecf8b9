// Package program contains the HTTP handlers for the Program resource
// (create + filtered list).
package program

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

// Create handles POST /api/programs.
// 201 with {"id": "<hex>"} on success. The referenced university_id is
// not checked for existence here.
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a program")

		var program types.Program

		err := json.NewDecoder(r.Body).Decode(&program)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(program); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		id, err := store.CreateProgram(r.Context(), program)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("program created", slog.String("id", id))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// GetList handles GET /api/programs?level=&field=&country=.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.ProgramFilter{
			Level:   r.URL.Query().Get("level"),
			Field:   r.URL.Query().Get("field"),
			Country: r.URL.Query().Get("country"),
		}

		programs, err := store.FindPrograms(r.Context(), filter, listLimit)
		if err != nil {
			slog.Error("error listing programs", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, programs)
	}
}
