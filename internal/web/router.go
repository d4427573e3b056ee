package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/listview"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/middleware"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

var statusFilter = []string{dtos.StatusActive, dtos.StatusDeactive}

// Routes builds the full HTTP surface: public marketing pages, login,
// and the admin dashboard behind the session gate.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(s.reg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/static/app.css", handleStylesheet)

	// public marketing surface, rate limited since it takes no login
	r.Group(func(pub chi.Router) {
		pub.Use(middleware.RateLimit(s.cfg.UI.RateLimitRPS))

		pub.Get("/", s.handleHome)
		pub.Get("/faq", s.handleFAQ)
		pub.Get("/testimonials", s.handleTestimonials)
		pub.Get("/contact", s.handleContactForm)
		pub.Post("/contact", s.handleContactSubmit)

		pub.Get("/login", s.handleLoginForm)
		pub.Post("/login", s.handleLogin)
	})

	r.Post("/logout", s.handleLogout)

	r.Route("/dashboard", func(dash chi.Router) {
		dash.Use(middleware.RequireAdmin(s.sessions))

		dash.Get("/", s.handleOverview)

		mountTable(s, dash, tableSpec[dtos.PilotUser]{
			title: "Pilots",
			path:  "/pilots",
			columns: []Column[dtos.PilotUser]{
				{Title: "Name", Cell: func(p dtos.PilotUser) string { return p.FullName }},
				{Title: "Email", Cell: func(p dtos.PilotUser) string { return p.Email }},
				{Title: "Phone", Cell: func(p dtos.PilotUser) string { return p.Phone }},
				{Title: "License", Cell: func(p dtos.PilotUser) string { return p.LicenseType }},
			},
			statusOptions: statusFilter,
			status:        pilotStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.PilotUser] { return ws.PilotList },
		})

		mountTable(s, dash, tableSpec[dtos.Instructor]{
			title: "Instructors",
			path:  "/instructors",
			columns: []Column[dtos.Instructor]{
				{Title: "Name", Cell: func(i dtos.Instructor) string { return i.Name }},
				{Title: "Email", Cell: func(i dtos.Instructor) string { return i.Email }},
				{Title: "Experience", Cell: func(i dtos.Instructor) string { return itoa(i.ExperienceYears) + " yrs" }},
			},
			statusOptions: statusFilter,
			status:        instructorStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.Instructor] { return ws.InstructorList },
		})

		mountTable(s, dash, tableSpec[dtos.Membership]{
			title: "Memberships",
			path:  "/memberships",
			columns: []Column[dtos.Membership]{
				{Title: "Plan", Cell: func(m dtos.Membership) string { return m.Name }},
				{Title: "Price", Cell: func(m dtos.Membership) string { return formatCents(m.PriceCents) }},
				{Title: "Duration", Cell: func(m dtos.Membership) string { return itoa(m.DurationDays) + " days" }},
			},
			statusOptions: statusFilter,
			status:        membershipStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.Membership] { return ws.MembershipList },
		})

		mountTable(s, dash, tableSpec[dtos.Ebook]{
			title: "Ebooks",
			path:  "/ebooks",
			columns: []Column[dtos.Ebook]{
				{Title: "Title", Cell: func(e dtos.Ebook) string { return e.Title }},
				{Title: "Author", Cell: func(e dtos.Ebook) string { return e.Author }},
			},
			statusOptions: statusFilter,
			status:        ebookStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.Ebook] { return ws.EbookList },
		})

		mountTable(s, dash, tableSpec[dtos.Podcast]{
			title: "Podcasts",
			path:  "/podcasts",
			columns: []Column[dtos.Podcast]{
				{Title: "Title", Cell: func(p dtos.Podcast) string { return p.Title }},
				{Title: "Host", Cell: func(p dtos.Podcast) string { return p.Host }},
				{Title: "Length", Cell: func(p dtos.Podcast) string { return formatDuration(p.DurationSec) }},
			},
			statusOptions: statusFilter,
			status:        podcastStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.Podcast] { return ws.PodcastList },
		})

		mountTable(s, dash, tableSpec[dtos.PromoCode]{
			title: "Promo codes",
			path:  "/promocodes",
			columns: []Column[dtos.PromoCode]{
				{Title: "Code", Cell: func(p dtos.PromoCode) string { return p.Code }},
				{Title: "Discount", Cell: func(p dtos.PromoCode) string { return itoa(p.DiscountPercent) + "%" }},
				{Title: "Expires", Cell: func(p dtos.PromoCode) string { return p.ExpiresAt }},
			},
			statusOptions: statusFilter,
			status:        promoCodeStatus,
			canToggle:     true,
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.PromoCode] { return ws.PromoCodeList },
		})

		// The logbook filters on flight type and has no active toggle.
		mountTable(s, dash, tableSpec[dtos.LogbookEntry]{
			title: "Logbook",
			path:  "/logbook",
			columns: []Column[dtos.LogbookEntry]{
				{Title: "Pilot", Cell: func(l dtos.LogbookEntry) string { return l.PilotName }},
				{Title: "Date", Cell: func(l dtos.LogbookEntry) string { return l.Date }},
				{Title: "Aircraft", Cell: func(l dtos.LogbookEntry) string { return l.Aircraft }},
				{Title: "Type", Cell: func(l dtos.LogbookEntry) string { return l.FlightType }},
				{Title: "Time", Cell: func(l dtos.LogbookEntry) string { return formatDuration(l.FlightTimeMin * 60) }},
			},
			statusOptions: []string{dtos.FlightTypeSolo, dtos.FlightTypeDual, dtos.FlightTypeSim},
			ctrl:          func(ws *Workspace) *listview.Controller[dtos.LogbookEntry] { return ws.LogbookList },
		})

		mountForms(s, dash)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","time":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}
