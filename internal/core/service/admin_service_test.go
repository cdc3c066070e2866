package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mahndi/payment-api/internal/core/domain"
)

func TestAdminService_ListAccounts_ProjectsPublicFields(t *testing.T) {
	repo := newStubAccountRepo()
	auth := NewAuthService(repo, zerolog.Nop())
	svc := NewAdminService(repo, zerolog.Nop())

	if _, err := auth.Register(context.Background(), "a@x.com", "555-0100", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := auth.Register(context.Background(), "b@x.com", "555-0101", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	users, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(users))
	}

	// The serialized result must never contain a hash under any key.
	raw, err := json.Marshal(users)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, needle := range []string{"password", "hash", "$2a$", "$2b$"} {
		if strings.Contains(strings.ToLower(string(raw)), needle) {
			t.Fatalf("serialized accounts leak credentials (%q): %s", needle, raw)
		}
	}
}

func TestAdminService_DeleteAccount(t *testing.T) {
	repo := newStubAccountRepo()
	auth := NewAuthService(repo, zerolog.Nop())
	svc := NewAdminService(repo, zerolog.Nop())

	if _, err := auth.Register(context.Background(), "a@x.com", "555-0100", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	id := repo.accounts["a@x.com"].ID

	if err := svc.DeleteAccount(context.Background(), id); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("expected account to be removed")
	}
}

func TestAdminService_DeleteAccount_NotFound(t *testing.T) {
	svc := NewAdminService(newStubAccountRepo(), zerolog.Nop())
	if err := svc.DeleteAccount(context.Background(), "missing"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
