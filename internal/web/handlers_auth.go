package web

import (
	"net/http"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/middleware"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/session"
)

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login", map[string]any{"Title": "Sign in"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		renderPage(w, "login", map[string]any{"Title": "Sign in", "Err": "Email and password are required"})
		return
	}

	login, err := s.auth.Login(r.Context(), email, password)
	if err != nil {
		if s.reg != nil {
			s.reg.LoginsTotal.WithLabelValues("failed").Inc()
		}
		renderPage(w, "login", map[string]any{"Title": "Sign in", "Err": client.Message(err)})
		return
	}

	// Only admins get a dashboard session. Pilots use the mobile app.
	if login.User.Role != dtos.RoleAdmin {
		if s.reg != nil {
			s.reg.LoginsTotal.WithLabelValues("forbidden").Inc()
		}
		renderPage(w, "login", map[string]any{"Title": "Sign in", "Err": "This account has no dashboard access"})
		return
	}

	sess, err := s.sessions.Create(r.Context(), login.Token, login.User)
	if err != nil {
		logging.Error("session create failed", "error", err.Error())
		renderPage(w, "login", map[string]any{"Title": "Sign in", "Err": "Failed to sign in"})
		return
	}

	if s.reg != nil {
		s.reg.LoginsTotal.WithLabelValues("ok").Inc()
		s.reg.SessionsActive.Inc()
	}

	// build the controllers now so the first dashboard request does not
	// pay a revalidation round-trip for a session we just issued
	s.spaces.put(newWorkspace(s.cfg, s.reg, sess))

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		// only a live session moves the gauge; a stale cookie (expired
		// or already signed out) must not drive it negative
		if _, err := s.sessions.Resolve(r.Context(), cookie.Value); err == nil {
			if err := s.sessions.Destroy(r.Context(), cookie.Value); err != nil {
				logging.Warn("session destroy failed", "error", err.Error())
			}
			if s.reg != nil {
				s.reg.SessionsActive.Dec()
			}
		}
		s.spaces.remove(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   middleware.SessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// currentWorkspace pulls the session placed by RequireAdmin and returns
// its live controller set. A restored session whose token the backend
// no longer accepts yields nil, which bounces the request to sign-in.
func (s *Server) currentWorkspace(r *http.Request) *Workspace {
	sess := session.FromContext(r.Context())
	if sess == nil {
		return nil
	}
	ws, err := s.workspace(r.Context(), sess)
	if err != nil {
		logging.Warn("session revalidation failed",
			"session", sess.ID,
			"error", err.Error(),
		)
		return nil
	}
	return ws
}
