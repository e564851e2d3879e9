package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bazaar/internal/model"
	"bazaar/internal/store"
)

type contextKey string

const memberKey contextKey = "member"

// RequireMember resolves the bearer token to a directory member and gates
// out disabled accounts. The token is the raw membername, so validation is
// the same lookup the login endpoint performs.
func RequireMember(db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				w.Header().Set("WWW-Authenticate", "Bearer")
				jsonError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			member, err := store.GetMemberByName(r.Context(), db, token)
			if err != nil {
				jsonError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if member == nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				jsonError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			if member.Disabled {
				jsonError(w, http.StatusBadRequest, "Inactive member")
				return
			}

			ctx := context.WithValue(r.Context(), memberKey, &member.Member)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberFrom retrieves the authenticated member from the context.
func MemberFrom(ctx context.Context) *model.Member {
	member, _ := ctx.Value(memberKey).(*model.Member)
	return member
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
