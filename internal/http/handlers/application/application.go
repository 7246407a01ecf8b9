// Package application contains the HTTP handlers for the Application
// resource (create + filtered list).
package application

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

// Create handles POST /api/applications.
// An omitted status defaults to "draft".
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an application")

		var application types.Application

		err := json.NewDecoder(r.Body).Decode(&application)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(application); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		if application.Status == "" {
			application.Status = types.ApplicationStatusDraft
		}

		id, err := store.CreateApplication(r.Context(), application)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("application created", slog.String("id", id))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// GetList handles GET /api/applications?status=&student_id=&program_id=.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.ApplicationFilter{
			Status:    r.URL.Query().Get("status"),
			StudentID: r.URL.Query().Get("student_id"),
			ProgramID: r.URL.Query().Get("program_id"),
		}

		applications, err := store.FindApplications(r.Context(), filter, listLimit)
		if err != nil {
			slog.Error("error listing applications", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, applications)
	}
}
