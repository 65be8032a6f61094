package middleware

import (
	"context"
	"net/http"

	"github.com/rentdesk/portal/internal/session"
)

type contextKey string

// ContextKeySession carries the resolved session for protected handlers.
const ContextKeySession = contextKey("session")

// RequireRole gates a role-scoped page tree. Unauthenticated or wrong-role
// navigations are redirected to the unauthorized page; everything else passes
// through with the session attached to the request context. The decision is
// pure and synchronous: no network calls, no side effects besides the
// redirect.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromRequest(r)
			if s == nil || s.Role != role {
				http.Redirect(w, r, "/unauthorized", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeySession, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session a guard attached, or nil on
// unguarded routes.
func SessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(ContextKeySession).(*session.Session)
	return s
}
