package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

const minPasswordLength = 6

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// ChangePassword replaces the password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError(fmt.Sprintf("new password must be at least %d characters", minPasswordLength))
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// DeleteAccount removes the caller's record. Users who already voted are kept
// so their vote entry never points at a missing user.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasVoted {
		return domain.ErrUserHasVoted
	}
	if err := s.repo.DeleteIfNotVoted(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
