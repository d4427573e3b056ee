package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
)

type overviewStat struct {
	Label string
	Link  string
	Count int
}

type overviewView struct {
	Title string
	Err   string
	Stats []overviewStat
}

// handleOverview shows per-entity totals. Counts come from page-1
// fetches with limit 1; only the reported total is used. A failed count
// renders as zero rather than failing the whole page.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ws := s.currentWorkspace(r)
	if ws == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	stats := []overviewStat{
		{Label: "Pilots", Link: "/dashboard/pilots"},
		{Label: "Instructors", Link: "/dashboard/instructors"},
		{Label: "Memberships", Link: "/dashboard/memberships"},
		{Label: "Ebooks", Link: "/dashboard/ebooks"},
		{Label: "Podcasts", Link: "/dashboard/podcasts"},
		{Label: "Promo codes", Link: "/dashboard/promocodes"},
		{Label: "Logbook entries", Link: "/dashboard/logbook"},
	}

	probe := gateway.ListQuery{Page: 1, Limit: 1}
	counts := []func() (int, error){
		func() (int, error) { res, err := ws.Pilots.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.Instructors.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.Memberships.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.Ebooks.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.Podcasts.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.PromoCodes.List(r.Context(), probe); return res.Total, err },
		func() (int, error) { res, err := ws.Logbook.List(r.Context(), probe); return res.Total, err },
	}

	g := new(errgroup.Group)
	for i, count := range counts {
		g.Go(func() error {
			n, err := count()
			if err != nil {
				logging.Warn("overview count failed", "entity", stats[i].Label, "error", err)
				return nil
			}
			stats[i].Count = n
			return nil
		})
	}
	_ = g.Wait()

	renderPage(w, "overview", overviewView{Title: "Overview", Stats: stats})
}
