package middlewares

import (
	"context"
	"net/http"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/session"
)

// Session resolves the caller's session from the storefront cookie, minting a
// new session (and setting the cookie) on first contact, and stores it in the
// request context.
func Session(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}

			sess := mgr.GetOrCreate(id)
			if sess.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by the Session middleware,
// or nil when the middleware did not run.
func SessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(ContextKeySession).(*session.Session)
	return s
}
