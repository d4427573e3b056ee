package gateway

import (
	"context"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/client"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

// Auth covers sign-in and the current-operator profile.
type Auth struct {
	c *client.Client
}

func NewAuth(c *client.Client) *Auth {
	return &Auth{c: c}
}

// Login exchanges credentials for a bearer token and the operator
// profile. The call itself goes out unauthenticated.
func (g *Auth) Login(ctx context.Context, email, password string) (dtos.LoginData, error) {
	var data dtos.LoginData
	err := g.c.PostJSON(ctx, "/auth/login",
		dtos.LoginRequest{Email: email, Password: password},
		&data, "Failed to sign in")
	return data, err
}

// Me fetches the profile for the attached token, used to revalidate a
// restored session.
func (g *Auth) Me(ctx context.Context) (dtos.UserProfile, error) {
	var profile dtos.UserProfile
	err := g.c.GetJSON(ctx, "/auth/me", nil, &profile, "Failed to load profile")
	return profile, err
}
