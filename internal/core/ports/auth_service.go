package ports

import (
	"context"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// RegisterInput carries the signup payload.
type RegisterInput struct {
	Name     string
	Age      int
	Email    string
	Mobile   string
	Address  string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenAuthenticator resolves a bearer token to the authenticated user id.
type TokenAuthenticator interface {
	Authenticate(token string) (string, error)
}

// AdminChecker answers role lookups for admin-gated operations.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) bool
}

// UserService exposes self-service operations on the caller's own record.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID string) error
}
