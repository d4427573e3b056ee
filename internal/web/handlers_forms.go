package web

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/gateway"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/listview"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

type formField struct {
	Label    string
	Name     string
	Type     string
	Value    string
	Options  []string
	Required bool
}

type formView struct {
	Title     string
	Action    string
	Back      string
	Err       string
	Multipart bool
	Fields    []formField
}

// findRow looks an entity up in the controller's current page. Edit
// forms prefill from it; rows outside the page are edited blind.
func findRow[T listview.Entity](ctrl *listview.Controller[T], id string) (T, bool) {
	for _, item := range ctrl.Snapshot().Items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// formFile returns the uploaded file for a field, or nil when the
// visitor left it empty.
func formFile(r *http.Request, field string) (io.Reader, string) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, ""
	}
	return file, header.Filename
}

func mountForms(s *Server, r chi.Router) {
	s.mountPilotForms(r)
	s.mountInstructorForms(r)
	s.mountMembershipForms(r)
	s.mountEbookForms(r)
	s.mountPodcastForms(r)
	s.mountPromoCodeForms(r)
	s.mountLogbookForms(r)
}

// submit runs one create or update and either redirects back to the
// list or re-renders the form with the backend's message.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, view formView, call func() error) {
	if err := call(); err != nil {
		view.Err = client.Message(err)
		renderPage(w, "entity_form", view)
		return
	}
	http.Redirect(w, r, view.Back, http.StatusSeeOther)
}

func (s *Server) withWorkspace(handler func(http.ResponseWriter, *http.Request, *Workspace)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws := s.currentWorkspace(r)
		if ws == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		handler(w, r, ws)
	}
}

func (s *Server) mountPilotForms(r chi.Router) {
	fields := func(p dtos.PilotUser, create bool) []formField {
		f := []formField{
			{Label: "Full name", Name: "fullName", Type: "text", Value: p.FullName, Required: true},
			{Label: "Email", Name: "email", Type: "email", Value: p.Email, Required: true},
			{Label: "Phone", Name: "phone", Type: "tel", Value: p.Phone},
			{Label: "License type", Name: "licenseType", Type: "text", Value: p.LicenseType},
		}
		if create {
			f = append(f, formField{Label: "Password", Name: "password", Type: "password", Required: true})
		}
		return f
	}

	r.Get("/pilots/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New pilot", Action: "/dashboard/pilots/new", Back: "/dashboard/pilots",
			Fields: fields(dtos.PilotUser{}, true),
		})
	}))
	r.Post("/pilots/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input := dtos.CreatePilotRequest{
			FullName:    strings.TrimSpace(r.PostFormValue("fullName")),
			Email:       strings.TrimSpace(r.PostFormValue("email")),
			Phone:       strings.TrimSpace(r.PostFormValue("phone")),
			LicenseType: strings.TrimSpace(r.PostFormValue("licenseType")),
			Password:    r.PostFormValue("password"),
		}
		view := formView{Title: "New pilot", Action: "/dashboard/pilots/new", Back: "/dashboard/pilots",
			Fields: fields(dtos.PilotUser{FullName: input.FullName, Email: input.Email, Phone: input.Phone, LicenseType: input.LicenseType}, true)}
		s.submit(w, r, view, func() error {
			_, err := ws.Pilots.Create(r.Context(), input)
			if err == nil {
				ws.Feed.Success("Pilot user created")
			}
			return err
		})
	}))

	r.Get("/pilots/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.PilotList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit pilot", Action: "/dashboard/pilots/" + id + "/edit", Back: "/dashboard/pilots",
			Fields: fields(row, false),
		})
	}))
	r.Post("/pilots/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input := dtos.UpdatePilotRequest{
			FullName:    strings.TrimSpace(r.PostFormValue("fullName")),
			Email:       strings.TrimSpace(r.PostFormValue("email")),
			Phone:       strings.TrimSpace(r.PostFormValue("phone")),
			LicenseType: strings.TrimSpace(r.PostFormValue("licenseType")),
		}
		view := formView{Title: "Edit pilot", Action: "/dashboard/pilots/" + id + "/edit", Back: "/dashboard/pilots",
			Fields: fields(dtos.PilotUser{FullName: input.FullName, Email: input.Email, Phone: input.Phone, LicenseType: input.LicenseType}, false)}
		s.submit(w, r, view, func() error {
			_, err := ws.Pilots.Update(r.Context(), id, input)
			if err == nil {
				ws.Feed.Success("Pilot user updated")
			}
			return err
		})
	}))
}

func (s *Server) mountInstructorForms(r chi.Router) {
	fields := func(i dtos.Instructor) []formField {
		return []formField{
			{Label: "Name", Name: "name", Type: "text", Value: i.Name, Required: true},
			{Label: "Email", Name: "email", Type: "email", Value: i.Email, Required: true},
			{Label: "Phone", Name: "phone", Type: "tel", Value: i.Phone},
			{Label: "Years of experience", Name: "experienceYears", Type: "number", Value: itoa(i.ExperienceYears)},
			{Label: "Photo", Name: "image", Type: "file"},
		}
	}
	parse := func(r *http.Request) dtos.InstructorInput {
		years, _ := strconv.Atoi(r.PostFormValue("experienceYears"))
		return dtos.InstructorInput{
			Name:            strings.TrimSpace(r.PostFormValue("name")),
			Email:           strings.TrimSpace(r.PostFormValue("email")),
			Phone:           strings.TrimSpace(r.PostFormValue("phone")),
			ExperienceYears: years,
		}
	}

	r.Get("/instructors/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New instructor", Action: "/dashboard/instructors/new", Back: "/dashboard/instructors",
			Multipart: true, Fields: fields(dtos.Instructor{}),
		})
	}))
	r.Post("/instructors/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input := parse(r)
		photo, photoName := formFile(r, "image")
		view := formView{Title: "New instructor", Action: "/dashboard/instructors/new", Back: "/dashboard/instructors",
			Multipart: true, Fields: fields(dtos.Instructor{Name: input.Name, Email: input.Email, Phone: input.Phone, ExperienceYears: input.ExperienceYears})}
		s.submit(w, r, view, func() error {
			_, err := ws.Instructors.Create(r.Context(), input, photo, photoName)
			if err == nil {
				ws.Feed.Success("Instructor created")
			}
			return err
		})
	}))

	r.Get("/instructors/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.InstructorList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit instructor", Action: "/dashboard/instructors/" + id + "/edit", Back: "/dashboard/instructors",
			Multipart: true, Fields: fields(row),
		})
	}))
	r.Post("/instructors/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input := parse(r)
		photo, photoName := formFile(r, "image")
		view := formView{Title: "Edit instructor", Action: "/dashboard/instructors/" + id + "/edit", Back: "/dashboard/instructors",
			Multipart: true, Fields: fields(dtos.Instructor{Name: input.Name, Email: input.Email, Phone: input.Phone, ExperienceYears: input.ExperienceYears})}
		s.submit(w, r, view, func() error {
			_, err := ws.Instructors.Update(r.Context(), id, input, photo, photoName)
			if err == nil {
				ws.Feed.Success("Instructor updated")
			}
			return err
		})
	}))
}

func (s *Server) mountMembershipForms(r chi.Router) {
	fields := func(m dtos.Membership) []formField {
		return []formField{
			{Label: "Plan name", Name: "name", Type: "text", Value: m.Name, Required: true},
			{Label: "Price (cents)", Name: "priceCents", Type: "number", Value: itoa(m.PriceCents), Required: true},
			{Label: "Duration (days)", Name: "durationDays", Type: "number", Value: itoa(m.DurationDays), Required: true},
			{Label: "Features (one per line)", Name: "features", Type: "textarea", Value: strings.Join(m.Features, "\n")},
		}
	}
	parse := func(r *http.Request) dtos.MembershipInput {
		price, _ := strconv.Atoi(r.PostFormValue("priceCents"))
		days, _ := strconv.Atoi(r.PostFormValue("durationDays"))
		var features []string
		for _, line := range strings.Split(r.PostFormValue("features"), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				features = append(features, line)
			}
		}
		return dtos.MembershipInput{
			Name:         strings.TrimSpace(r.PostFormValue("name")),
			PriceCents:   price,
			DurationDays: days,
			Features:     features,
		}
	}

	r.Get("/memberships/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New membership", Action: "/dashboard/memberships/new", Back: "/dashboard/memberships",
			Fields: fields(dtos.Membership{}),
		})
	}))
	r.Post("/memberships/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input := parse(r)
		view := formView{Title: "New membership", Action: "/dashboard/memberships/new", Back: "/dashboard/memberships",
			Fields: fields(dtos.Membership{Name: input.Name, PriceCents: input.PriceCents, DurationDays: input.DurationDays, Features: input.Features})}
		s.submit(w, r, view, func() error {
			_, err := ws.Memberships.Create(r.Context(), input)
			if err == nil {
				ws.Feed.Success("Membership created")
			}
			return err
		})
	}))

	r.Get("/memberships/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.MembershipList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit membership", Action: "/dashboard/memberships/" + id + "/edit", Back: "/dashboard/memberships",
			Fields: fields(row),
		})
	}))
	r.Post("/memberships/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input := parse(r)
		view := formView{Title: "Edit membership", Action: "/dashboard/memberships/" + id + "/edit", Back: "/dashboard/memberships",
			Fields: fields(dtos.Membership{Name: input.Name, PriceCents: input.PriceCents, DurationDays: input.DurationDays, Features: input.Features})}
		s.submit(w, r, view, func() error {
			_, err := ws.Memberships.Update(r.Context(), id, input)
			if err == nil {
				ws.Feed.Success("Membership updated")
			}
			return err
		})
	}))
}

func (s *Server) mountEbookForms(r chi.Router) {
	fields := func(e dtos.Ebook) []formField {
		return []formField{
			{Label: "Title", Name: "title", Type: "text", Value: e.Title, Required: true},
			{Label: "Author", Name: "author", Type: "text", Value: e.Author, Required: true},
			{Label: "Cover image", Name: "coverImage", Type: "file"},
			{Label: "PDF", Name: "pdf", Type: "file"},
		}
	}
	parse := func(r *http.Request) (dtos.EbookInput, gateway.EbookUpload) {
		input := dtos.EbookInput{
			Title:  strings.TrimSpace(r.PostFormValue("title")),
			Author: strings.TrimSpace(r.PostFormValue("author")),
		}
		var upload gateway.EbookUpload
		upload.Cover, upload.CoverName = formFile(r, "coverImage")
		upload.Pdf, upload.PdfName = formFile(r, "pdf")
		return input, upload
	}

	r.Get("/ebooks/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New ebook", Action: "/dashboard/ebooks/new", Back: "/dashboard/ebooks",
			Multipart: true, Fields: fields(dtos.Ebook{}),
		})
	}))
	r.Post("/ebooks/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input, upload := parse(r)
		view := formView{Title: "New ebook", Action: "/dashboard/ebooks/new", Back: "/dashboard/ebooks",
			Multipart: true, Fields: fields(dtos.Ebook{Title: input.Title, Author: input.Author})}
		s.submit(w, r, view, func() error {
			_, err := ws.Ebooks.Create(r.Context(), input, upload)
			if err == nil {
				ws.Feed.Success("Ebook created")
			}
			return err
		})
	}))

	r.Get("/ebooks/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.EbookList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit ebook", Action: "/dashboard/ebooks/" + id + "/edit", Back: "/dashboard/ebooks",
			Multipart: true, Fields: fields(row),
		})
	}))
	r.Post("/ebooks/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input, upload := parse(r)
		view := formView{Title: "Edit ebook", Action: "/dashboard/ebooks/" + id + "/edit", Back: "/dashboard/ebooks",
			Multipart: true, Fields: fields(dtos.Ebook{Title: input.Title, Author: input.Author})}
		s.submit(w, r, view, func() error {
			_, err := ws.Ebooks.Update(r.Context(), id, input, upload)
			if err == nil {
				ws.Feed.Success("Ebook updated")
			}
			return err
		})
	}))
}

func (s *Server) mountPodcastForms(r chi.Router) {
	fields := func(p dtos.Podcast) []formField {
		return []formField{
			{Label: "Title", Name: "title", Type: "text", Value: p.Title, Required: true},
			{Label: "Host", Name: "host", Type: "text", Value: p.Host, Required: true},
			{Label: "Duration (seconds)", Name: "durationSec", Type: "number", Value: itoa(p.DurationSec)},
			{Label: "Audio", Name: "audio", Type: "file"},
			{Label: "Cover image", Name: "coverImage", Type: "file"},
		}
	}
	parse := func(r *http.Request) (dtos.PodcastInput, gateway.PodcastUpload) {
		duration, _ := strconv.Atoi(r.PostFormValue("durationSec"))
		input := dtos.PodcastInput{
			Title:       strings.TrimSpace(r.PostFormValue("title")),
			Host:        strings.TrimSpace(r.PostFormValue("host")),
			DurationSec: duration,
		}
		var upload gateway.PodcastUpload
		upload.Audio, upload.AudioName = formFile(r, "audio")
		upload.Cover, upload.CoverName = formFile(r, "coverImage")
		return input, upload
	}

	r.Get("/podcasts/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New podcast", Action: "/dashboard/podcasts/new", Back: "/dashboard/podcasts",
			Multipart: true, Fields: fields(dtos.Podcast{}),
		})
	}))
	r.Post("/podcasts/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input, upload := parse(r)
		view := formView{Title: "New podcast", Action: "/dashboard/podcasts/new", Back: "/dashboard/podcasts",
			Multipart: true, Fields: fields(dtos.Podcast{Title: input.Title, Host: input.Host, DurationSec: input.DurationSec})}
		s.submit(w, r, view, func() error {
			_, err := ws.Podcasts.Create(r.Context(), input, upload)
			if err == nil {
				ws.Feed.Success("Podcast created")
			}
			return err
		})
	}))

	r.Get("/podcasts/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.PodcastList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit podcast", Action: "/dashboard/podcasts/" + id + "/edit", Back: "/dashboard/podcasts",
			Multipart: true, Fields: fields(row),
		})
	}))
	r.Post("/podcasts/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input, upload := parse(r)
		view := formView{Title: "Edit podcast", Action: "/dashboard/podcasts/" + id + "/edit", Back: "/dashboard/podcasts",
			Multipart: true, Fields: fields(dtos.Podcast{Title: input.Title, Host: input.Host, DurationSec: input.DurationSec})}
		s.submit(w, r, view, func() error {
			_, err := ws.Podcasts.Update(r.Context(), id, input, upload)
			if err == nil {
				ws.Feed.Success("Podcast updated")
			}
			return err
		})
	}))
}

func (s *Server) mountPromoCodeForms(r chi.Router) {
	fields := func(p dtos.PromoCode) []formField {
		return []formField{
			{Label: "Code", Name: "code", Type: "text", Value: p.Code, Required: true},
			{Label: "Discount (%)", Name: "discountPercent", Type: "number", Value: itoa(p.DiscountPercent), Required: true},
			{Label: "Expires", Name: "expiresAt", Type: "date", Value: p.ExpiresAt},
		}
	}
	parse := func(r *http.Request) dtos.PromoCodeInput {
		discount, _ := strconv.Atoi(r.PostFormValue("discountPercent"))
		return dtos.PromoCodeInput{
			Code:            strings.ToUpper(strings.TrimSpace(r.PostFormValue("code"))),
			DiscountPercent: discount,
			ExpiresAt:       r.PostFormValue("expiresAt"),
		}
	}

	r.Get("/promocodes/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New promo code", Action: "/dashboard/promocodes/new", Back: "/dashboard/promocodes",
			Fields: fields(dtos.PromoCode{}),
		})
	}))
	r.Post("/promocodes/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input := parse(r)
		view := formView{Title: "New promo code", Action: "/dashboard/promocodes/new", Back: "/dashboard/promocodes",
			Fields: fields(dtos.PromoCode{Code: input.Code, DiscountPercent: input.DiscountPercent, ExpiresAt: input.ExpiresAt})}
		s.submit(w, r, view, func() error {
			_, err := ws.PromoCodes.Create(r.Context(), input)
			if err == nil {
				ws.Feed.Success("Promo code created")
			}
			return err
		})
	}))

	r.Get("/promocodes/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.PromoCodeList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit promo code", Action: "/dashboard/promocodes/" + id + "/edit", Back: "/dashboard/promocodes",
			Fields: fields(row),
		})
	}))
	r.Post("/promocodes/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input := parse(r)
		view := formView{Title: "Edit promo code", Action: "/dashboard/promocodes/" + id + "/edit", Back: "/dashboard/promocodes",
			Fields: fields(dtos.PromoCode{Code: input.Code, DiscountPercent: input.DiscountPercent, ExpiresAt: input.ExpiresAt})}
		s.submit(w, r, view, func() error {
			_, err := ws.PromoCodes.Update(r.Context(), id, input)
			if err == nil {
				ws.Feed.Success("Promo code updated")
			}
			return err
		})
	}))
}

func (s *Server) mountLogbookForms(r chi.Router) {
	fields := func(l dtos.LogbookEntry) []formField {
		return []formField{
			{Label: "Pilot id", Name: "pilotId", Type: "text", Value: l.PilotID, Required: true},
			{Label: "Date", Name: "date", Type: "date", Value: l.Date, Required: true},
			{Label: "Aircraft", Name: "aircraft", Type: "text", Value: l.Aircraft, Required: true},
			{Label: "Route", Name: "route", Type: "text", Value: l.Route},
			{Label: "Flight type", Name: "flightType", Type: "text", Value: l.FlightType,
				Options: []string{dtos.FlightTypeSolo, dtos.FlightTypeDual, dtos.FlightTypeSim}},
			{Label: "Flight time (minutes)", Name: "flightTimeMin", Type: "number", Value: itoa(l.FlightTimeMin), Required: true},
			{Label: "Remarks", Name: "remarks", Type: "textarea", Value: l.Remarks},
		}
	}
	parse := func(r *http.Request) dtos.LogbookInput {
		minutes, _ := strconv.Atoi(r.PostFormValue("flightTimeMin"))
		return dtos.LogbookInput{
			PilotID:       strings.TrimSpace(r.PostFormValue("pilotId")),
			Date:          r.PostFormValue("date"),
			Aircraft:      strings.TrimSpace(r.PostFormValue("aircraft")),
			Route:         strings.TrimSpace(r.PostFormValue("route")),
			FlightType:    r.PostFormValue("flightType"),
			FlightTimeMin: minutes,
			Remarks:       strings.TrimSpace(r.PostFormValue("remarks")),
		}
	}

	r.Get("/logbook/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		renderPage(w, "entity_form", formView{
			Title: "New logbook entry", Action: "/dashboard/logbook/new", Back: "/dashboard/logbook",
			Fields: fields(dtos.LogbookEntry{FlightType: dtos.FlightTypeSolo}),
		})
	}))
	r.Post("/logbook/new", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		input := parse(r)
		view := formView{Title: "New logbook entry", Action: "/dashboard/logbook/new", Back: "/dashboard/logbook",
			Fields: fields(dtos.LogbookEntry{PilotID: input.PilotID, Date: input.Date, Aircraft: input.Aircraft,
				Route: input.Route, FlightType: input.FlightType, FlightTimeMin: input.FlightTimeMin, Remarks: input.Remarks})}
		s.submit(w, r, view, func() error {
			_, err := ws.Logbook.Create(r.Context(), input)
			if err == nil {
				ws.Feed.Success("Logbook entry created")
			}
			return err
		})
	}))

	r.Get("/logbook/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		row, _ := findRow(ws.LogbookList, id)
		renderPage(w, "entity_form", formView{
			Title: "Edit logbook entry", Action: "/dashboard/logbook/" + id + "/edit", Back: "/dashboard/logbook",
			Fields: fields(row),
		})
	}))
	r.Post("/logbook/{id}/edit", s.withWorkspace(func(w http.ResponseWriter, r *http.Request, ws *Workspace) {
		id := chi.URLParam(r, "id")
		input := parse(r)
		view := formView{Title: "Edit logbook entry", Action: "/dashboard/logbook/" + id + "/edit", Back: "/dashboard/logbook",
			Fields: fields(dtos.LogbookEntry{PilotID: input.PilotID, Date: input.Date, Aircraft: input.Aircraft,
				Route: input.Route, FlightType: input.FlightType, FlightTimeMin: input.FlightTimeMin, Remarks: input.Remarks})}
		s.submit(w, r, view, func() error {
			_, err := ws.Logbook.Update(r.Context(), id, input)
			if err == nil {
				ws.Feed.Success("Logbook entry updated")
			}
			return err
		})
	}))
}
