// Package memory provides an in-memory implementation of the
// storage.Storage interface. It backs unit tests (handlers, the
// recommendation engine) without a live MongoDB.
//
// It honours the same contract as the mongo implementation: ObjectID
// hex identifiers (including ErrInvalidID on malformed input), exact-
// match conjunction filters, and a result cap. Find results come back
// in insertion order, which is a convenient stand-in for the "store-
// defined order" the contract leaves unspecified.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
)

// InMemory is a mutex-guarded set of entity slices. Safe for concurrent
// use.
type InMemory struct {
	mu           sync.RWMutex
	students     []types.Student
	universities []types.University
	programs     []types.Program
	recruiters   []types.Recruiter
	applications []types.Application
}

// NewInMemory returns an empty store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// capped applies the find limit semantics: limit <= 0 yields nothing.
func capped[T any](items []T, limit int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, it)
	}
	return out
}

func (m *InMemory) CreateStudent(_ context.Context, s types.Student) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = primitive.NewObjectID()
	m.students = append(m.students, s)
	return s.ID.Hex(), nil
}

func (m *InMemory) GetStudentByID(_ context.Context, id string) (types.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Student{}, storage.ErrInvalidID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.ID == oid {
			return s, nil
		}
	}
	return types.Student{}, storage.ErrStudentNotFound
}

func (m *InMemory) FindStudents(_ context.Context, f types.StudentFilter, limit int64) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.Student, 0)
	for _, s := range m.students {
		if f.Level != "" && s.Level != f.Level {
			continue
		}
		if f.PreferredCountry != "" && s.PreferredCountry != f.PreferredCountry {
			continue
		}
		matched = append(matched, s)
	}
	return capped(matched, limit), nil
}

func (m *InMemory) CreateUniversity(_ context.Context, u types.University) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = primitive.NewObjectID()
	m.universities = append(m.universities, u)
	return u.ID.Hex(), nil
}

func (m *InMemory) FindUniversities(_ context.Context, f types.UniversityFilter, limit int64) ([]types.University, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.University, 0)
	for _, u := range m.universities {
		if f.Country != "" && u.Country != f.Country {
			continue
		}
		matched = append(matched, u)
	}
	return capped(matched, limit), nil
}

func (m *InMemory) CreateProgram(_ context.Context, p types.Program) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = primitive.NewObjectID()
	m.programs = append(m.programs, p)
	return p.ID.Hex(), nil
}

func (m *InMemory) FindPrograms(_ context.Context, f types.ProgramFilter, limit int64) ([]types.Program, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.Program, 0)
	for _, p := range m.programs {
		if f.Level != "" && p.Level != f.Level {
			continue
		}
		if f.Field != "" && p.Field != f.Field {
			continue
		}
		if f.Country != "" && p.Country != f.Country {
			continue
		}
		matched = append(matched, p)
	}
	return capped(matched, limit), nil
}

func (m *InMemory) CreateRecruiter(_ context.Context, r types.Recruiter) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = primitive.NewObjectID()
	m.recruiters = append(m.recruiters, r)
	return r.ID.Hex(), nil
}

func (m *InMemory) FindRecruiters(_ context.Context, f types.RecruiterFilter, limit int64) ([]types.Recruiter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.Recruiter, 0)
	for _, r := range m.recruiters {
		if f.Verified != nil && r.Verified != *f.Verified {
			continue
		}
		matched = append(matched, r)
	}
	return capped(matched, limit), nil
}

func (m *InMemory) CreateApplication(_ context.Context, a types.Application) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = primitive.NewObjectID()
	m.applications = append(m.applications, a)
	return a.ID.Hex(), nil
}

func (m *InMemory) FindApplications(_ context.Context, f types.ApplicationFilter, limit int64) ([]types.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.Application, 0)
	for _, a := range m.applications {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.StudentID != "" && a.StudentID != f.StudentID {
			continue
		}
		if f.ProgramID != "" && a.ProgramID != f.ProgramID {
			continue
		}
		matched = append(matched, a)
	}
	return capped(matched, limit), nil
}
