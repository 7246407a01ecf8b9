package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
)

func TestCreateStudent_ReturnsParseableHexID(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	id, err := store.CreateStudent(ctx, types.Student{
		FirstName: "Aisha",
		LastName:  "Khan",
		Email:     "aisha@test.com",
	})
	require.NoError(t, err)

	_, err = primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "returned id must be a valid ObjectID hex")

	found, err := store.GetStudentByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Aisha", found.FirstName)
}

func TestCreate_DoesNotMutateCallersValue(t *testing.T) {
	store := NewInMemory()

	s := types.Student{FirstName: "Ben", LastName: "Okafor", Email: "ben@test.com"}
	_, err := store.CreateStudent(context.Background(), s)
	require.NoError(t, err)

	assert.True(t, s.ID.IsZero(), "caller's struct must keep its zero ID")
}

func TestGetStudentByID_MalformedID(t *testing.T) {
	store := NewInMemory()

	_, err := store.GetStudentByID(context.Background(), "zzzz")
	require.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestGetStudentByID_NotFound(t *testing.T) {
	store := NewInMemory()

	_, err := store.GetStudentByID(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestFindPrograms_FilterIsConjunction(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	seed := []types.Program{
		{Title: "a", Level: "master", Field: "CS", Country: "CA"},
		{Title: "b", Level: "master", Field: "CS", Country: "UK"},
		{Title: "c", Level: "phd", Field: "CS", Country: "CA"},
	}
	for _, p := range seed {
		_, err := store.CreateProgram(ctx, p)
		require.NoError(t, err)
	}

	got, err := store.FindPrograms(ctx, types.ProgramFilter{Level: "master", Country: "CA"}, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	// Zero-value filter matches everything.
	all, err := store.FindPrograms(ctx, types.ProgramFilter{}, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFind_RespectsLimit(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.CreateUniversity(ctx, types.University{Name: "U", Country: "CA"})
		require.NoError(t, err)
	}

	got, err := store.FindUniversities(ctx, types.UniversityFilter{}, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFindRecruiters_VerifiedTriState(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	_, err := store.CreateRecruiter(ctx, types.Recruiter{Name: "A", Email: "a@test.com", Verified: true})
	require.NoError(t, err)
	_, err = store.CreateRecruiter(ctx, types.Recruiter{Name: "B", Email: "b@test.com", Verified: false})
	require.NoError(t, err)

	verified := true
	got, err := store.FindRecruiters(ctx, types.RecruiterFilter{Verified: &verified}, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	// Unset pointer means "all", not "false".
	all, err := store.FindRecruiters(ctx, types.RecruiterFilter{}, 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindApplications_ByStudentAndStatus(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	_, err := store.CreateApplication(ctx, types.Application{StudentID: "s1", ProgramID: "p1", Status: "draft"})
	require.NoError(t, err)
	_, err = store.CreateApplication(ctx, types.Application{StudentID: "s1", ProgramID: "p2", Status: "submitted"})
	require.NoError(t, err)
	_, err = store.CreateApplication(ctx, types.Application{StudentID: "s2", ProgramID: "p1", Status: "draft"})
	require.NoError(t, err)

	got, err := store.FindApplications(ctx, types.ApplicationFilter{StudentID: "s1", Status: "draft"}, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProgramID)
}
