// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and the recommendation engine can all import types
// without depending on each other.
//
// Each model maps to one MongoDB collection; the collection name is the
// lowercase of the struct name ("student", "university", ...).
//
// Struct tags serve three purposes:
//
//  1. json:"..."     — field name on the wire. The ID field is a
//     primitive.ObjectID, which marshals to its hex string form, so
//     every response carries the identifier as a plain string.
//
//  2. bson:"..."     — field name inside the document store. "_id" with
//     omitempty lets the store assign the identifier on insert.
//
//  3. validate:"..." — rules checked by go-playground/validator on
//     request payloads. Optional numeric fields are pointers so that
//     "absent" is distinguishable from a legitimate zero, and the
//     range rules apply only when the field is present (omitempty).
package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is an applicant profile. The recommendation engine consumes
// Level, PreferredCountry, Interests and GPA; the rest is contact data.
type Student struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName        string             `json:"first_name" bson:"first_name" validate:"required"`
	LastName         string             `json:"last_name" bson:"last_name" validate:"required"`
	Email            string             `json:"email" bson:"email" validate:"required,email"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Citizenship      string             `json:"citizenship,omitempty" bson:"citizenship,omitempty"`
	PreferredCountry string             `json:"preferred_country,omitempty" bson:"preferred_country,omitempty"`
	Level            string             `json:"level,omitempty" bson:"level,omitempty"`
	Interests        []string           `json:"interests" bson:"interests"`
	GPA              *float64           `json:"gpa,omitempty" bson:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	TestScores       map[string]any     `json:"test_scores,omitempty" bson:"test_scores,omitempty"`
}

// University is an institution record. It takes no part in scoring and
// exists as a filter target for listing and as the referent of
// Program.UniversityID.
type University struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Country     string             `json:"country" bson:"country" validate:"required"`
	City        string             `json:"city,omitempty" bson:"city,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Ranking     *int               `json:"ranking,omitempty" bson:"ranking,omitempty" validate:"omitempty,gte=1"`
}

// Program is a course of study offered by a university. Tags and MinGPA
// drive the recommendation score; Level and Country drive the candidate
// pre-filter. UniversityID is assumed valid by callers — referential
// integrity is not enforced here.
type Program struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UniversityID   string             `json:"university_id" bson:"university_id" validate:"required"`
	Title          string             `json:"title" bson:"title" validate:"required"`
	Level          string             `json:"level" bson:"level" validate:"required"`
	Field          string             `json:"field" bson:"field" validate:"required"`
	DurationMonths *int               `json:"duration_months,omitempty" bson:"duration_months,omitempty" validate:"omitempty,gte=1"`
	TuitionUSD     *float64           `json:"tuition_usd,omitempty" bson:"tuition_usd,omitempty" validate:"omitempty,gte=0"`
	IntakeMonths   []string           `json:"intake_months" bson:"intake_months"`
	Country        string             `json:"country,omitempty" bson:"country,omitempty"`
	City           string             `json:"city,omitempty" bson:"city,omitempty"`
	MinGPA         *float64           `json:"min_gpa,omitempty" bson:"min_gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	Tags           []string           `json:"tags" bson:"tags"`
	Requirements   map[string]any     `json:"requirements,omitempty" bson:"requirements,omitempty"`
}

// Recruiter is an agent who places students with programs.
type Recruiter struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Company  string             `json:"company,omitempty" bson:"company,omitempty"`
	Regions  []string           `json:"regions" bson:"regions"`
	Verified bool               `json:"verified" bson:"verified"`
}

// Application links a student to a program, optionally via a recruiter.
type Application struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StudentID   string             `json:"student_id" bson:"student_id" validate:"required"`
	ProgramID   string             `json:"program_id" bson:"program_id" validate:"required"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=draft submitted under_review accepted rejected withdrawn"`
	RecruiterID string             `json:"recruiter_id,omitempty" bson:"recruiter_id,omitempty"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ApplicationStatusDraft is the status a new application receives when
// the payload leaves it empty.
const ApplicationStatusDraft = "draft"

// ScoredProgram is a Program annotated with its relevance score for one
// student. It is the element type of a recommendation response.
type ScoredProgram struct {
	Program
	Score int `json:"score"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Filters
//
// Each Find* storage method takes a typed, closed filter struct instead
// of a free-form field→value map. The zero value matches everything;
// each non-zero field adds one exact-match condition (the conjunction of
// the present fields). Translation to the store's native query form
// happens inside the storage implementation, so callers stay decoupled
// from query syntax.
// ─────────────────────────────────────────────────────────────────────────────

// StudentFilter narrows student listings.
type StudentFilter struct {
	Level            string
	PreferredCountry string
}

// UniversityFilter narrows university listings.
type UniversityFilter struct {
	Country string
}

// ProgramFilter narrows program listings and recommendation candidates.
type ProgramFilter struct {
	Level   string
	Field   string
	Country string
}

// RecruiterFilter narrows recruiter listings. Verified is a pointer so
// "unset" (match all) is distinguishable from "false".
type RecruiterFilter struct {
	Verified *bool
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	Status    string
	StudentID string
	ProgramID string
}
