// Package recommend implements the rule-based program recommendation
// engine: given a student, score a candidate set of programs by tag
// overlap (plus a GPA adjustment) and return the top-K.
//
// The scoring itself is pure — Score and Rank touch no storage — and
// the Recommender composes it with the storage gateway for the full
// resolve → filter → fetch → rank pipeline.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
)

// DefaultLimit is the number of recommendations returned when the
// caller does not ask for a specific count.
const DefaultLimit = 10

// candidateCap bounds the candidate set fetched from storage before
// ranking. It is independent of — and always at least — the caller's
// limit, so truncation happens after scoring, not before.
const candidateCap = 200

// Score computes the relevance of one program for one student:
//
//	score = |interests ∩ tags|
//	        + 1 if both GPAs present and student.GPA >= program.MinGPA
//	        - 1 if both GPAs present and student.GPA <  program.MinGPA
//
// Interests and tags are treated as sets: duplicates collapse, order is
// irrelevant, and matching is case-sensitive with no fuzzing. When
// either GPA is absent the adjustment is skipped entirely — absence is
// a no-op, never a penalty.
func Score(student types.Student, program types.Program) int {
	interests := make(map[string]struct{}, len(student.Interests))
	for _, tag := range student.Interests {
		interests[tag] = struct{}{}
	}

	score := 0
	seen := make(map[string]struct{}, len(program.Tags))
	for _, tag := range program.Tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		if _, ok := interests[tag]; ok {
			score++
		}
	}

	if student.GPA != nil && program.MinGPA != nil {
		if *student.GPA >= *program.MinGPA {
			score++
		} else {
			score--
		}
	}

	return score
}

// Rank scores every program against the student, sorts by score
// descending, and truncates to limit.
//
// The sort is stable and keyed solely on the score: programs with equal
// scores keep their relative order from the input slice. That input
// order is whatever the store returned, so ties carry no meaning beyond
// "fetched earlier".
//
// A non-positive limit returns an empty slice (never nil, never an
// error).
func Rank(student types.Student, programs []types.Program, limit int) []types.ScoredProgram {
	scored := make([]types.ScoredProgram, 0, len(programs))
	for _, p := range programs {
		scored = append(scored, types.ScoredProgram{
			Program: p,
			Score:   Score(student, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(scored) {
		limit = len(scored)
	}
	return scored[:limit]
}

// Recommender wires the pure ranking onto the storage gateway. The
// zero value is not usable; construct with New.
type Recommender struct {
	storage storage.Storage
}

// New returns a Recommender reading from the given storage.
func New(s storage.Storage) *Recommender {
	return &Recommender{storage: s}
}

// Recommend resolves studentID, fetches candidate programs matching the
// student's level and preferred country (each constraint applies only
// when the student has the field set), and returns the top limit
// programs by score.
//
// Errors: storage.ErrInvalidID when the identifier is malformed,
// storage.ErrStudentNotFound when it resolves to nothing; any other
// error means the store failed. An empty candidate set is a success
// with an empty result, not an error.
//
// Each call performs exactly two sequential reads and has no side
// effects, so identical calls against identical store state yield
// identical output.
func (r *Recommender) Recommend(ctx context.Context, studentID string, limit int) ([]types.ScoredProgram, error) {
	student, err := r.storage.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	filter := types.ProgramFilter{
		Level:   student.Level,
		Country: student.PreferredCountry,
	}

	// Fetch more candidates than the caller asked for so ranking
	// decides the cut, not store order.
	fetchLimit := int64(candidateCap)
	if int64(limit) > fetchLimit {
		fetchLimit = int64(limit)
	}

	programs, err := r.storage.FindPrograms(ctx, filter, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("recommend: fetch candidates: %w", err)
	}

	return Rank(student, programs, limit), nil
}
