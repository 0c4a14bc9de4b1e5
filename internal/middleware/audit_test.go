package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/audit"
	"github.com/dangerclosesec/thinknest/internal/auth"
	"github.com/dangerclosesec/thinknest/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) LogContentWrite(ctx context.Context, e audit.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestAudit(t *testing.T) {
	rec := &recordingAudit{}
	tm := auth.NewTokenManager("0123456789abcdef0123", time.Hour)
	token, err := tm.Generate("ops@example.com")
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/v1/news", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(tm), middleware.Audit(rec))
		r.Get("/{id}", okHandler)
		r.Delete("/{id}", okHandler)
	})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/v1/news/42", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, rec.entries, 1)
	e := rec.entries[0]
	assert.Equal(t, "ops@example.com", e.Subject)
	assert.Equal(t, http.MethodDelete, e.Method)
	assert.Equal(t, "news", e.Entity)
	assert.Equal(t, "42", e.Ref)
	assert.Equal(t, http.StatusNoContent, e.Status)
}
