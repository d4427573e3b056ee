package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/listview"
)

// tableSpec binds one dashboard table to its controller, columns, and
// routes. The same spec shape serves every entity.
type tableSpec[T listview.Entity] struct {
	title         string
	path          string // route under /dashboard, e.g. "/pilots"
	columns       []Column[T]
	statusOptions []string
	status        func(T) string
	canToggle     bool
	ctrl          func(*Workspace) *listview.Controller[T]
}

func (spec tableSpec[T]) base() string { return "/dashboard" + spec.path }

// mountTable registers the page, fragment, and row-action routes for
// one entity table.
func mountTable[T listview.Entity](s *Server, r chi.Router, spec tableSpec[T]) {
	render := func(w http.ResponseWriter, ws *Workspace, full, reload bool) {
		ctrl := spec.ctrl(ws)
		view := buildTable(spec.title, spec.base(), spec.columns, spec.statusOptions, spec.canToggle,
			ctrl.Snapshot(), spec.status, ws.Feed.Drain())
		// a fragment rendered while a fetch is still pending schedules
		// its own reload so the rows land without further input
		view.Reload = reload || view.Loading
		if full {
			renderPage(w, "entity_page", view)
			return
		}
		renderPage(w, "entity_table", view)
	}

	r.Get(spec.path, s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).Refresh(req.Context())
		render(w, ws, true, false)
	}))

	// htmx polls this after a debounced search to pick up the rows the
	// deferred fetch brought in
	r.Get(spec.path+"/table", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/search", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).SetSearch(req.Context(), req.PostFormValue("search"))
		render(w, ws, false, true)
	}))

	r.Post(spec.path+"/status", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).SetStatus(req.Context(), req.PostFormValue("status"))
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/page", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		page, err := strconv.Atoi(req.PostFormValue("page"))
		if err != nil {
			page = 1
		}
		spec.ctrl(ws).SetPage(req.Context(), page)
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/limit", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		limit, err := strconv.Atoi(req.PostFormValue("limit"))
		if err != nil {
			limit = 0
		}
		spec.ctrl(ws).SetLimit(req.Context(), limit)
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/{id}/activate", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).Activate(req.Context(), chi.URLParam(req, "id"))
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/{id}/deactivate", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).Deactivate(req.Context(), chi.URLParam(req, "id"))
		render(w, ws, false, false)
	}))

	r.Post(spec.path+"/{id}/delete", s.withWorkspace(func(w http.ResponseWriter, req *http.Request, ws *Workspace) {
		spec.ctrl(ws).Delete(req.Context(), chi.URLParam(req, "id"))
		render(w, ws, false, false)
	}))
}
