// Package student contains the HTTP handlers for the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The router expects handler functions with the signature
// func(http.ResponseWriter, *http.Request), which has no room for a
// storage dependency. Each exported function here is a factory: it
// accepts the dependency once at registration time and returns the
// actual handler, which closes over it.
//
//	router.HandleFunc("POST /api/students", student.Create(storage))
//
// Students are created and listed only — update and delete do not exist
// anywhere in this API.
package student

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

// listLimit caps every listing response.
const listLimit = 100

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /api/students
//
// Request body (JSON):
//
//	{ "first_name": "Aisha", "last_name": "Khan", "email": "aisha@test.com",
//	  "level": "master", "interests": ["AI", "Robotics"], "gpa": 3.5 }
//
// Success response (201 Created):
//
//	{ "id": "665f2e9b8f1b2c3d4e5f6a7b" }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or failed validation
//	500 Internal    — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student

		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// validate:"..." tags on types.Student carry the field rules,
		// including the 0.0–4.0 GPA bounds.
		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		id, err := store.CreateStudent(r.Context(), student)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.String("id", id))
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/students?level=&country=
//
// Both query parameters are optional; each one present adds an exact-
// match constraint (country matches the student's preferred_country).
//
// Success response (200 OK): a JSON array of students — [] when none
// match, never null.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := types.StudentFilter{
			Level:            r.URL.Query().Get("level"),
			PreferredCountry: r.URL.Query().Get("country"),
		}

		slog.Info("listing students",
			slog.String("level", filter.Level),
			slog.String("country", filter.PreferredCountry),
		)

		students, err := store.FindStudents(r.Context(), filter, listLimit)
		if err != nil {
			slog.Error("error listing students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}
