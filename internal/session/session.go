// Package session holds the one piece of client-side persisted state
// the dashboard keeps per signed-in operator: the backend bearer token,
// plus the decoded profile for display. Stores mirror the teacher
// cache split: in-memory for single-instance deploys, Redis when the
// dashboard runs replicated.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

var ErrNotFound = errors.New("session not found")

// Data is one operator session.
type Data struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	Profile   dtos.UserProfile `json:"profile"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Store persists sessions keyed by id.
type Store interface {
	Put(ctx context.Context, data Data) error
	Get(ctx context.Context, id string) (*Data, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Service creates and resolves sessions on top of a Store.
type Service struct {
	store Store
	ttl   time.Duration
}

func NewService(store Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{store: store, ttl: ttl}
}

// Create mints a session for a freshly logged-in operator.
func (s *Service) Create(ctx context.Context, token string, profile dtos.UserProfile) (*Data, error) {
	now := time.Now()
	data := Data{
		ID:        uuid.New().String(),
		Token:     token,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Resolve loads a session by id, treating expiry as absence.
func (s *Service) Resolve(ctx context.Context, id string) (*Data, error) {
	data, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if time.Now().After(data.ExpiresAt) {
		_ = s.store.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return data, nil
}

// Destroy removes a session on sign-out.
func (s *Service) Destroy(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
