// internal/middleware/audit.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/audit"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const apiPrefix = "/api/v1/"

// Audit records every non-GET request that passes through it. Mount it after RequireAdmin so
// the admin subject is known.
func Audit(l audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			ref := chi.URLParam(r, "id")
			if ref == "" {
				ref = chi.URLParam(r, "idOrSlug")
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry := audit.Entry{
				Subject:   AdminSubject(r.Context()),
				Method:    r.Method,
				Path:      r.URL.Path,
				Entity:    entityOf(r.URL.Path),
				Ref:       ref,
				Status:    status,
				RequestID: chimw.GetReqID(r.Context()),
				IP:        ClientIP(r),
				At:        time.Now().UTC(),
			}
			_ = l.LogContentWrite(r.Context(), entry)
		})
	}
}

// entityOf names the resource collection of path, e.g. "/api/v1/news/42" -> "news".
func entityOf(path string) string {
	path = strings.TrimPrefix(path, apiPrefix)
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
