package web

import (
	"context"
	"sync"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/config"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/listview"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/metrics"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/notify"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/session"
)

// Workspace is the live per-operator state: one authenticated API
// client plus one list controller per dashboard table. Controllers are
// in-process only; the session store persists just the token.
type Workspace struct {
	SessionID string
	Feed      *notify.Feed

	Auth        *gateway.Auth
	Pilots      *gateway.Pilots
	Instructors *gateway.Instructors
	Memberships *gateway.Memberships
	Ebooks      *gateway.Ebooks
	Podcasts    *gateway.Podcasts
	PromoCodes  *gateway.PromoCodes
	Logbook     *gateway.Logbook

	PilotList      *listview.Controller[dtos.PilotUser]
	InstructorList *listview.Controller[dtos.Instructor]
	MembershipList *listview.Controller[dtos.Membership]
	EbookList      *listview.Controller[dtos.Ebook]
	PodcastList    *listview.Controller[dtos.Podcast]
	PromoCodeList  *listview.Controller[dtos.PromoCode]
	LogbookList    *listview.Controller[dtos.LogbookEntry]

	lastSeen time.Time
}

func newWorkspace(cfg config.Cfg, reg *metrics.Registry, sess *session.Data) *Workspace {
	c := client.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSec)*time.Second, client.StaticToken(sess.Token))
	if reg != nil {
		c.Observe = reg.ObserveBackendCall
	}

	feed := notify.NewFeed(20)

	ws := &Workspace{
		SessionID:   sess.ID,
		Feed:        feed,
		Auth:        gateway.NewAuth(c),
		Pilots:      gateway.NewPilots(c),
		Instructors: gateway.NewInstructors(c),
		Memberships: gateway.NewMemberships(c),
		Ebooks:      gateway.NewEbooks(c),
		Podcasts:    gateway.NewPodcasts(c),
		PromoCodes:  gateway.NewPromoCodes(c),
		Logbook:     gateway.NewLogbook(c),
		lastSeen:    time.Now(),
	}

	debounce := cfg.UI.SearchDebounce
	pageSize := cfg.UI.DefaultLimit

	ws.PilotList = listview.New(listview.Config[dtos.PilotUser]{
		Label:      "Pilot user",
		Fetch:      ws.Pilots.List,
		Activate:   ws.Pilots.Activate,
		Deactivate: ws.Pilots.Deactivate,
		Delete:     ws.Pilots.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.InstructorList = listview.New(listview.Config[dtos.Instructor]{
		Label:      "Instructor",
		Fetch:      ws.Instructors.List,
		Activate:   ws.Instructors.Activate,
		Deactivate: ws.Instructors.Deactivate,
		Delete:     ws.Instructors.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.MembershipList = listview.New(listview.Config[dtos.Membership]{
		Label:      "Membership",
		Fetch:      ws.Memberships.List,
		Activate:   ws.Memberships.Activate,
		Deactivate: ws.Memberships.Deactivate,
		Delete:     ws.Memberships.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.EbookList = listview.New(listview.Config[dtos.Ebook]{
		Label:      "Ebook",
		Fetch:      ws.Ebooks.List,
		Activate:   ws.Ebooks.Activate,
		Deactivate: ws.Ebooks.Deactivate,
		Delete:     ws.Ebooks.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.PodcastList = listview.New(listview.Config[dtos.Podcast]{
		Label:      "Podcast",
		Fetch:      ws.Podcasts.List,
		Activate:   ws.Podcasts.Activate,
		Deactivate: ws.Podcasts.Deactivate,
		Delete:     ws.Podcasts.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.PromoCodeList = listview.New(listview.Config[dtos.PromoCode]{
		Label:      "Promo code",
		Fetch:      ws.PromoCodes.List,
		Activate:   ws.PromoCodes.Activate,
		Deactivate: ws.PromoCodes.Deactivate,
		Delete:     ws.PromoCodes.Delete,
		Notifier:   feed,
		Debounce:   debounce,
		PageSize:   pageSize,
	})
	ws.LogbookList = listview.New(listview.Config[dtos.LogbookEntry]{
		Label:    "Logbook entry",
		Fetch:    ws.Logbook.List,
		Delete:   ws.Logbook.Delete,
		Notifier: feed,
		Debounce: debounce,
		PageSize: pageSize,
	})

	return ws
}

// workspaces tracks live controller sets per session id.
type workspaces struct {
	mu  sync.Mutex
	m   map[string]*Workspace
	ttl time.Duration
}

func newWorkspaces(ttl time.Duration) *workspaces {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &workspaces{m: make(map[string]*Workspace), ttl: ttl}
}

func (w *workspaces) get(id string) (*Workspace, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ws, ok := w.m[id]
	if ok {
		ws.lastSeen = time.Now()
	}
	return ws, ok
}

func (w *workspaces) put(ws *Workspace) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.m[ws.SessionID] = ws
}

func (w *workspaces) remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.m, id)
}

// prune drops workspaces idle past the session TTL.
func (w *workspaces) prune(now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	removed := 0
	for id, ws := range w.m {
		if now.Sub(ws.lastSeen) > w.ttl {
			delete(w.m, id)
			removed++
		}
	}
	return removed
}

// RunJanitor prunes idle workspaces until ctx is cancelled.
func (s *Server) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 15 * time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.spaces.prune(now)
		}
	}
}
