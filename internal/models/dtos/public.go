package dtos

// Testimonial is a quote shown on the marketing pages.
type Testimonial struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	RoleLine string `json:"roleLine,omitempty"`
	Quote    string `json:"quote"`
	ImageURL string `json:"image,omitempty"`
}

// TestimonialListData is the payload of GET /testimonial/all-testimonial.
type TestimonialListData struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// ContactRequest is the body for POST /contact/create, submitted from
// the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
