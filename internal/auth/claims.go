package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

var ErrMalformedToken = errors.New("malformed bearer token")

// TokenClaims is what the dashboard reads out of the backend-issued JWT.
// The token is parsed WITHOUT signature verification: the backend is the
// authority on every call anyway, the dashboard only needs role and
// expiry for navigation gating.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

func (c TokenClaims) IsAdmin() bool {
	return c.Role == dtos.RoleAdmin
}

func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type backendClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ReadToken extracts display claims from a backend bearer token.
func ReadToken(token string) (TokenClaims, error) {
	var claims backendClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, ErrMalformedToken
	}

	out := TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
