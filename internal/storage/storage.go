// Package storage defines the Storage interface — the gateway contract
// between the application core and the physical document store.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers and the recommendation engine should not know or care which
// store they are talking to. By depending only on this interface:
//
//   - Switching stores = implement the interface for the new backend,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass the in-memory implementation. No live
//     database needed for unit tests.
//
// The contract is insert + filtered find only. Update and delete are
// deliberately absent: every entity in this system is created once and
// then only read.
package storage

import (
	"context"
	"errors"

	"github.com/metaapply/metaapply-api/internal/types"
)

// Sentinel errors every implementation must return so callers can map
// failures to HTTP statuses with errors.Is. Any other error from a
// Storage method means the store itself failed (unreachable, query
// error) and surfaces as a 500.
var (
	// ErrInvalidID means a caller-supplied identifier is not in the
	// store's addressable format (a 24-character hex ObjectID). This is
	// a caller mistake, distinct from "looked and found nothing".
	ErrInvalidID = errors.New("invalid id format")

	// ErrStudentNotFound means a well-formed identifier matched no
	// student document.
	ErrStudentNotFound = errors.New("student not found")
)

// Storage is the document-store contract. Every method takes a
// context.Context so request cancellation propagates into the store.
//
// Create* methods insert one document and return its new identifier in
// hex string form; they never mutate the caller's value.
//
// Find* methods apply the filter as an exact-match conjunction of its
// non-zero fields (zero-value filter ⇒ match all), cap the result at
// limit, and make no ordering promise — callers must not read meaning
// into result order.
type Storage interface {
	CreateStudent(ctx context.Context, s types.Student) (string, error)

	// GetStudentByID resolves one student. Returns ErrInvalidID when id
	// is not parseable, ErrStudentNotFound when nothing matches.
	GetStudentByID(ctx context.Context, id string) (types.Student, error)

	FindStudents(ctx context.Context, f types.StudentFilter, limit int64) ([]types.Student, error)

	CreateUniversity(ctx context.Context, u types.University) (string, error)
	FindUniversities(ctx context.Context, f types.UniversityFilter, limit int64) ([]types.University, error)

	CreateProgram(ctx context.Context, p types.Program) (string, error)
	FindPrograms(ctx context.Context, f types.ProgramFilter, limit int64) ([]types.Program, error)

	CreateRecruiter(ctx context.Context, r types.Recruiter) (string, error)
	FindRecruiters(ctx context.Context, f types.RecruiterFilter, limit int64) ([]types.Recruiter, error)

	CreateApplication(ctx context.Context, a types.Application) (string, error)
	FindApplications(ctx context.Context, f types.ApplicationFilter, limit int64) ([]types.Application, error)
}
