package ports

import (
	"context"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// CreateCandidateInput carries the fields an admin may set on a new candidate.
type CreateCandidateInput struct {
	Name  string
	Party string
	Age   int
}

// CandidateService is the admin-facing candidate registry.
// Callers must have passed the admin gate before invoking it.
type CandidateService interface {
	CreateCandidate(ctx context.Context, actorID string, input CreateCandidateInput) (*domain.Candidate, error)
	UpdateCandidate(ctx context.Context, actorID, candidateID string, patch domain.CandidatePatch) (*domain.Candidate, error)
	DeleteCandidate(ctx context.Context, actorID, candidateID string) (*domain.Candidate, error)
}

// VotingService is the voting engine.
type VotingService interface {
	CastVote(ctx context.Context, candidateID, userID string) error
}

// ReportService serves the public read-only projections.
type ReportService interface {
	ListResults(ctx context.Context) ([]domain.PartyResult, error)
	ListCandidates(ctx context.Context) ([]domain.RosterEntry, error)
}
