package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenStoreInMemory(t *testing.T) {
	s := NewTokenStore(nil)
	ctx := context.Background()

	if err := s.Save(ctx, "hash-a", 42, "ADMIN", time.Minute); err != nil {
		t.Fatal(err)
	}

	id, role, err := s.Lookup(ctx, "hash-a")
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 || role != "ADMIN" {
		t.Errorf("lookup = (%d, %q)", id, role)
	}

	if _, _, err := s.Lookup(ctx, "unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown hash error = %v, want ErrNotFound", err)
	}

	if err := s.Delete(ctx, "hash-a"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Lookup(ctx, "hash-a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted hash error = %v, want ErrNotFound", err)
	}

	// Deleting twice stays silent; logout is idempotent.
	if err := s.Delete(ctx, "hash-a"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestTokenStoreExpiry(t *testing.T) {
	s := NewTokenStore(nil)
	ctx := context.Background()

	if err := s.Save(ctx, "hash-b", 7, "STAFF", -time.Second); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Lookup(ctx, "hash-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired hash error = %v, want ErrNotFound", err)
	}
}
