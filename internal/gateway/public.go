package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Public covers the unauthenticated marketing-site calls.
type Public struct {
	c *client.Client
}

func NewPublic(c *client.Client) *Public {
	return &Public{c: c}
}

// Testimonials fetches the quotes shown on the home page.
func (g *Public) Testimonials(ctx context.Context) ([]dtos.Testimonial, error) {
	var data dtos.TestimonialListData
	err := g.c.GetJSON(ctx, "/testimonial/all-testimonial", nil, &data, "Failed to fetch testimonials")
	if err != nil {
		return nil, err
	}
	return data.Testimonials, nil
}

// SubmitContact forwards a contact-form submission to the backend.
func (g *Public) SubmitContact(ctx context.Context, req dtos.ContactRequest) error {
	return g.c.PostJSON(ctx, "/contact/create", req, nil, "Failed to send message")
}
