package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// CandidateService is the candidate registry. The admin gate runs before
// any of its methods are invoked.
type CandidateService struct {
	repo   ports.CandidateRepository
	audit  ports.AuditPublisher
	logger zerolog.Logger
}

func NewCandidateService(repo ports.CandidateRepository, audit ports.AuditPublisher, logger zerolog.Logger) *CandidateService {
	return &CandidateService{repo: repo, audit: audit, logger: logger}
}

// CreateCandidate stores a new candidate with an empty tally.
func (s *CandidateService) CreateCandidate(ctx context.Context, actorID string, input ports.CreateCandidateInput) (*domain.Candidate, error) {
	now := time.Now().UTC()
	candidate := &domain.Candidate{
		Name:      strings.TrimSpace(input.Name),
		Party:     strings.TrimSpace(input.Party),
		Age:       input.Age,
		Votes:     []domain.VoteEntry{},
		VoteCount: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create candidate")
		return nil, fmt.Errorf("create candidate: %w", err)
	}

	s.publish(domain.AuditCandidateCreated, actorID, created.ID, now)
	s.logger.Info().Str("candidate_id", created.ID).Str("party", created.Party).Str("actor_id", actorID).Msg("candidate created")
	return created, nil
}

// UpdateCandidate applies a partial update and re-validates the merged record.
func (s *CandidateService) UpdateCandidate(ctx context.Context, actorID, candidateID string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if patch.Empty() {
		return nil, domain.NewValidationError("at least one of name, party, age must be provided")
	}

	existing, err := s.repo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.UpdateFields(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update candidate: %w", err)
	}

	s.publish(domain.AuditCandidateUpdated, actorID, updated.ID, existing.UpdatedAt)
	s.logger.Info().Str("candidate_id", updated.ID).Str("actor_id", actorID).Msg("candidate updated")
	return updated, nil
}

// DeleteCandidate removes the candidate and returns the deleted record.
// Candidates holding votes are refused with domain.ErrCandidateHasVotes.
func (s *CandidateService) DeleteCandidate(ctx context.Context, actorID, candidateID string) (*domain.Candidate, error) {
	deleted, err := s.repo.Delete(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	s.publish(domain.AuditCandidateDeleted, actorID, deleted.ID, time.Now().UTC())
	s.logger.Info().Str("candidate_id", deleted.ID).Int("vote_count", deleted.VoteCount).Str("actor_id", actorID).Msg("candidate deleted")
	return deleted, nil
}

func (s *CandidateService) publish(action domain.AuditAction, actorID, candidateID string, at time.Time) {
	s.audit.Publish(domain.AuditEvent{
		Action:      action,
		ActorID:     actorID,
		CandidateID: candidateID,
		At:          at,
	})
}
