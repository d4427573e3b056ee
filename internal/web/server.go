package web

import (
	"context"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/config"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/metrics"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/session"
)

// Server wires the marketing site and the admin dashboard over the
// remote API. All business state lives behind that API; the server only
// keeps sessions and per-session list controllers.
type Server struct {
	cfg      config.Cfg
	sessions *session.Service
	reg      *metrics.Registry
	spaces   *workspaces

	// unauthenticated gateways for the public surface and login
	auth   *gateway.Auth
	public *gateway.Public
}

// NewServer builds the dashboard server.
func NewServer(cfg config.Cfg, sessions *session.Service, reg *metrics.Registry) *Server {
	anon := client.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSec)*time.Second, client.StaticToken(""))
	if reg != nil {
		anon.Observe = reg.ObserveBackendCall
	}

	return &Server{
		cfg:      cfg,
		sessions: sessions,
		reg:      reg,
		spaces:   newWorkspaces(cfg.Session.TTL),
		auth:     gateway.NewAuth(anon),
		public:   gateway.NewPublic(anon),
	}
}

// workspace returns the live controller set for a session. A session
// with no workspace was restored from the store (restart, janitor
// prune), so the backend gets one Me call to confirm it still accepts
// the token before controllers are cached for it.
func (s *Server) workspace(ctx context.Context, sess *session.Data) (*Workspace, error) {
	if ws, ok := s.spaces.get(sess.ID); ok {
		return ws, nil
	}
	ws := newWorkspace(s.cfg, s.reg, sess)
	if _, err := ws.Auth.Me(ctx); err != nil {
		return nil, err
	}
	s.spaces.put(ws)
	return ws, nil
}
