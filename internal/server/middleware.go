package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/chembot/admin/internal/server/reqctx"
)

// withRequestID assigns a unique ID to each request for log correlation.
// An incoming X-Request-ID header is honored so proxies can thread their own.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := reqctx.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
