package ports

import (
	"context"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// CandidateRepository defines persistence for the candidate registry.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	FindByID(ctx context.Context, id string) (*domain.Candidate, error)
	// UpdateFields overwrites name, party and age only; votes and vote_count
	// are never touched so concurrent ballots are not lost.
	UpdateFields(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	Delete(ctx context.Context, id string) (*domain.Candidate, error)
	// ListByVoteCount returns every candidate ordered by vote_count desc,
	// ties broken by creation order.
	ListByVoteCount(ctx context.Context) ([]*domain.Candidate, error)
	// ListRoster returns name and party of every candidate in storage order.
	ListRoster(ctx context.Context) ([]domain.RosterEntry, error)
}
