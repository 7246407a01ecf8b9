package recruiter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaapply/metaapply-api/internal/storage/memory"
	"github.com/metaapply/metaapply-api/internal/types"
)

func seed(t *testing.T, store *memory.InMemory) {
	t.Helper()
	ctx := context.Background()

	_, err := store.CreateRecruiter(ctx, types.Recruiter{Name: "A", Email: "a@test.com", Verified: true})
	require.NoError(t, err)
	_, err = store.CreateRecruiter(ctx, types.Recruiter{Name: "B", Email: "b@test.com", Verified: false})
	require.NoError(t, err)
}

func TestGetList_VerifiedFilter(t *testing.T) {
	store := memory.NewInMemory()
	seed(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/recruiters?verified=true", nil)
	rec := httptest.NewRecorder()
	GetList(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.Recruiter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestGetList_NoFilterReturnsAll(t *testing.T) {
	store := memory.NewInMemory()
	seed(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/recruiters", nil)
	rec := httptest.NewRecorder()
	GetList(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []types.Recruiter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetList_BadVerifiedValue(t *testing.T) {
	store := memory.NewInMemory()
	seed(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/recruiters?verified=maybe", nil)
	rec := httptest.NewRecorder()
	GetList(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
