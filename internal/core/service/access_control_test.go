package service

import (
	"context"
	"errors"
	"testing"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
	"github.com/civicvote/voting-system/internal/infrastructure/memory"
)

type brokenUserRepo struct {
	ports.UserRepository
}

func (brokenUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, errors.New("connection reset")
}

func TestAccessControl_IsAdmin(t *testing.T) {
	store := memory.NewStore()
	ac := NewAccessControl(store, nopLogger())
	admin := seedUser(t, store, "admin@example.com", domain.RoleAdmin, "secret1")
	voter := seedUser(t, store, "v@example.com", domain.RoleVoter, "secret1")

	cases := map[string]struct {
		userID string
		want   bool
	}{
		"admin":   {admin.ID, true},
		"voter":   {voter.ID, false},
		"unknown": {"ghost", false},
		"empty":   {"", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := ac.IsAdmin(context.Background(), tc.userID); got != tc.want {
				t.Fatalf("IsAdmin(%q) = %v, want %v", tc.userID, got, tc.want)
			}
		})
	}
}

func TestAccessControl_IsAdmin_FailsClosed(t *testing.T) {
	ac := NewAccessControl(brokenUserRepo{}, nopLogger())
	if ac.IsAdmin(context.Background(), "anyone") {
		t.Fatalf("lookup failure must deny admin access")
	}
}
