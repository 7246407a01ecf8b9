package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	pingErr error
}

func (s stubStore) Ping(context.Context) error { return s.pingErr }
func (s stubStore) DatabaseName() string       { return "metaapply" }

func TestGet_StoreReachable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	Get(stubStore{})(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status": "ok", "database": "connected", "database_name": "metaapply"}`,
		rec.Body.String())
}

func TestGet_StoreUnreachable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	Get(stubStore{pingErr: errors.New("connection refused")})(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t,
		`{"status": "ok", "database": "unreachable"}`,
		rec.Body.String())
}
