package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/civicvote/voting-system/internal/core/ports"
)

// AccessControl resolves roles from the user directory.
type AccessControl struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAccessControl(users ports.UserRepository, log zerolog.Logger) *AccessControl {
	return &AccessControl{users: users, log: log}
}

// IsAdmin fails closed: any lookup error means "not admin".
func (a *AccessControl) IsAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", userID).Msg("role lookup failed, denying admin access")
		return false
	}
	return user.IsAdmin()
}
