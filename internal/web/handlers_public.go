package web

import (
	"net/http"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

type faqItem struct{ Q, A string }

// The FAQ is static marketing copy; everything dynamic on the public
// site comes from the backend.
var faqItems = []faqItem{
	{"Do I need a medical certificate before booking?", "Yes, a valid class 2 medical (or better) is required before your first MOT booking."},
	{"Can I pause my membership?", "Memberships can be deactivated from your account page and resumed at any time."},
	{"Who writes the e-books?", "All study material is written by our active instructors."},
	{"How do logbook entries get verified?", "Your instructor signs off each entry after the flight is reviewed."},
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "home", map[string]any{"Title": "Home"})
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "faq", map[string]any{"Title": "FAQ", "FAQs": faqItems})
}

// handleTestimonials serves the home-page testimonial fragment, fetched
// lazily so a slow backend never blocks the landing page.
func (s *Server) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := s.public.Testimonials(r.Context())

	data := map[string]any{"Testimonials": testimonials}
	if err != nil {
		data["Err"] = client.Message(err)
	}
	renderPage(w, "testimonials", data)
}

func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "contact", map[string]any{"Title": "Contact"})
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := dtos.ContactRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	// Form-level validation stops obviously empty submissions before
	// any network call.
	if req.Name == "" || req.Email == "" || req.Message == "" {
		renderPage(w, "contact", map[string]any{
			"Title": "Contact", "Err": "Name, email and message are required",
			"Name": req.Name, "Email": req.Email, "Subject": req.Subject, "Message": req.Message,
		})
		return
	}

	if err := s.public.SubmitContact(r.Context(), req); err != nil {
		renderPage(w, "contact", map[string]any{
			"Title": "Contact", "Err": client.Message(err),
			"Name": req.Name, "Email": req.Email, "Subject": req.Subject, "Message": req.Message,
		})
		return
	}

	renderPage(w, "contact", map[string]any{"Title": "Contact", "Sent": true})
}
