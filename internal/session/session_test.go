package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/models/dtos"
)

func TestService_CreateAndResolve(t *testing.T) {
	svc := NewService(NewMemoryStore(time.Hour), time.Hour)

	ctx := context.Background()
	created, err := svc.Create(ctx, "bearer-abc", dtos.UserProfile{ID: "u1", Role: dtos.RoleAdmin})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a session id")
	}

	resolved, err := svc.Resolve(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected session resolvable, got %v", err)
	}
	if resolved.Token != "bearer-abc" {
		t.Errorf("Expected token kept, got %q", resolved.Token)
	}
	if resolved.Profile.Role != dtos.RoleAdmin {
		t.Errorf("Expected admin profile, got %q", resolved.Profile.Role)
	}
}

func TestService_ResolveUnknown(t *testing.T) {
	svc := NewService(NewMemoryStore(time.Hour), time.Hour)

	_, err := svc.Resolve(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestService_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	svc := NewService(store, time.Hour)

	ctx := context.Background()
	expired := Data{
		ID:        "s1",
		Token:     "bearer-old",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(time.Minute), // store accepts it
	}
	if err := store.Put(ctx, expired); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	// Flip the expiry below now and re-store.
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	store.cache.Set(expired.ID, expired, time.Minute)

	if _, err := svc.Resolve(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected expired session to resolve as missing, got %v", err)
	}
}

func TestService_Destroy(t *testing.T) {
	svc := NewService(NewMemoryStore(time.Hour), time.Hour)

	ctx := context.Background()
	created, _ := svc.Create(ctx, "bearer-abc", dtos.UserProfile{ID: "u1"})

	if err := svc.Destroy(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.Resolve(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected session gone after destroy, got %v", err)
	}
}
