package program

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaapply/metaapply-api/internal/storage/memory"
	"github.com/metaapply/metaapply-api/internal/types"
)

func TestCreate_RequiresCoreFields(t *testing.T) {
	store := memory.NewInMemory()

	// level and field are mandatory on programs.
	body := `{"university_id": "u1", "title": "MSc CS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/programs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Create(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_AndListByField(t *testing.T) {
	store := memory.NewInMemory()

	body := `{
		"university_id": "u1",
		"title": "MSc Computer Science",
		"level": "master",
		"field": "Computer Science",
		"country": "CA",
		"min_gpa": 3.0,
		"tags": ["AI", "NLP"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/programs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Create(store)(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	_, err := store.CreateProgram(context.Background(), types.Program{
		UniversityID: "u1", Title: "LLB", Level: "bachelor", Field: "Law",
	})
	require.NoError(t, err)

	listReq := httptest.NewRequest(http.MethodGet, "/api/programs?field=Computer+Science", nil)
	listRec := httptest.NewRecorder()
	GetList(store)(listRec, listReq)

	require.Equal(t, http.StatusOK, listRec.Code)

	var got []types.Program
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "MSc Computer Science", got[0].Title)
	require.NotNil(t, got[0].MinGPA)
	assert.Equal(t, 3.0, *got[0].MinGPA)
}
