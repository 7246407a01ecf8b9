// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Two error shapes exist:
//
//   - The envelope: {"status": "error", "error": "..."} for decode,
//     validation, and storage failures.
//   - The detail:   {"detail": "..."} for identifier errors on lookup
//     routes ("Invalid ID format", "Student not found"), matching what
//     API consumers of the original service already parse.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for general error cases.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. data can be any JSON-encodable value.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called, headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope. Use this
// for unexpected errors (store failures, decode errors, etc.).
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// Detail is the {"detail": "..."} error body used by lookup routes for
// 400 (malformed identifier) and 404 (no such record).
type Detail struct {
	Detail string `json:"detail"`
}

// NewDetail builds a Detail body.
func NewDetail(msg string) Detail {
	return Detail{Detail: msg}
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response, one plain-English clause per
// failing field.
//
// Example output:
//
//	{ "status": "error", "error": "field FirstName is required, field GPA is out of range" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "gte", "lte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is out of range", e.Field()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
