package ports

import (
	"context"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// UserRepository defines persistence for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AdminExists reports whether any user already holds the admin role.
	AdminExists(ctx context.Context) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// DeleteIfNotVoted removes the user only while has_voted is false.
	// It returns domain.ErrUserHasVoted when the user has a recorded vote.
	DeleteIfNotVoted(ctx context.Context, id string) error
}
