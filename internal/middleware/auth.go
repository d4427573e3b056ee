package middleware

import (
	"net/http"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/auth"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/session"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "dashboard_session"

// RequireAdmin resolves the session cookie and gates the dashboard to
// admin operators. Anything else is bounced to the sign-in page; this
// is navigation gating only, the backend re-checks every call.
func RequireAdmin(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				redirectToLogin(w, r)
				return
			}

			sess, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				redirectToLogin(w, r)
				return
			}

			if sess.Profile.Role != dtos.RoleAdmin {
				redirectToLogin(w, r)
				return
			}

			// Tokens carry their own role and expiry; a stale or
			// demoted one means the backend would reject everything
			// anyway. Opaque tokens skip this and rely on the profile.
			if claims, err := auth.ReadToken(sess.Token); err == nil {
				if claims.Expired(time.Now()) || !claims.IsAdmin() {
					redirectToLogin(w, r)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
