package recommendation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metaapply/metaapply-api/internal/recommend"
	"github.com/metaapply/metaapply-api/internal/storage/memory"
	"github.com/metaapply/metaapply-api/internal/types"
)

func gpa(v float64) *float64 { return &v }

// newRouter registers the handler on a real ServeMux so the
// {student_id} path value resolves exactly as in production.
func newRouter(store *memory.InMemory) http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("GET /api/recommendations/{student_id}", Get(recommend.New(store)))
	return router
}

func seedStudent(t *testing.T, store *memory.InMemory, s types.Student) string {
	t.Helper()
	id, err := store.CreateStudent(context.Background(), s)
	require.NoError(t, err)
	return id
}

func TestGet_RanksAndScores(t *testing.T) {
	store := memory.NewInMemory()
	id := seedStudent(t, store, types.Student{
		FirstName:        "Aisha",
		LastName:         "Khan",
		Email:            "aisha@test.com",
		Level:            "master",
		PreferredCountry: "CA",
		Interests:        []string{"AI", "Robotics"},
		GPA:              gpa(3.5),
	})

	ctx := context.Background()
	_, err := store.CreateProgram(ctx, types.Program{
		Title: "P1", Level: "master", Country: "CA",
		Tags: []string{"AI", "NLP"}, MinGPA: gpa(3.0),
	})
	require.NoError(t, err)
	_, err = store.CreateProgram(ctx, types.Program{
		Title: "P2", Level: "master", Country: "CA",
		Tags: []string{"Robotics", "AI"}, MinGPA: gpa(3.8),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/"+id, nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.ScoredProgram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].Title)
	assert.Equal(t, 2, got[0].Score)
	assert.Equal(t, "P2", got[1].Title)
	assert.Equal(t, 1, got[1].Score)

	// The identifier must appear as a hex string on the wire.
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	wireID, ok := raw[0]["id"].(string)
	require.True(t, ok, "program id must be a JSON string")
	_, err = primitive.ObjectIDFromHex(wireID)
	assert.NoError(t, err)
}

func TestGet_LimitTruncates(t *testing.T) {
	store := memory.NewInMemory()
	id := seedStudent(t, store, types.Student{
		FirstName: "Ben", LastName: "Okafor", Email: "ben@test.com",
		Interests: []string{"AI"},
	})

	for i := 0; i < 5; i++ {
		_, err := store.CreateProgram(context.Background(), types.Program{
			Title: "p", Level: "master", Field: "CS", Tags: []string{"AI"},
		})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/"+id+"?limit=2", nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.ScoredProgram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGet_ZeroLimitReturnsEmptyArray(t *testing.T) {
	store := memory.NewInMemory()
	id := seedStudent(t, store, types.Student{
		FirstName: "Lena", LastName: "Virtanen", Email: "lena@test.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/"+id+"?limit=0", nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGet_NonIntegerLimit(t *testing.T) {
	store := memory.NewInMemory()
	id := seedStudent(t, store, types.Student{
		FirstName: "Mara", LastName: "Silva", Email: "mara@test.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/"+id+"?limit=ten", nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_UnknownStudentIs404(t *testing.T) {
	store := memory.NewInMemory()

	req := httptest.NewRequest(http.MethodGet,
		"/api/recommendations/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Student not found"}`, rec.Body.String())
}

func TestGet_MalformedIDIs400(t *testing.T) {
	store := memory.NewInMemory()

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/not-hex", nil)
	rec := httptest.NewRecorder()
	newRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail": "Invalid ID format"}`, rec.Body.String())
}
