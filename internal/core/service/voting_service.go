package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// VotingService enforces the one-vote-per-user rule.
type VotingService struct {
	candidates ports.CandidateRepository
	users      ports.UserRepository
	recorder   ports.VoteRecorder
	lock       ports.VoteLock
	audit      ports.AuditPublisher
	log        zerolog.Logger
}

func NewVotingService(
	candidates ports.CandidateRepository,
	users ports.UserRepository,
	recorder ports.VoteRecorder,
	lock ports.VoteLock,
	audit ports.AuditPublisher,
	log zerolog.Logger,
) *VotingService {
	return &VotingService{
		candidates: candidates,
		users:      users,
		recorder:   recorder,
		lock:       lock,
		audit:      audit,
		log:        log,
	}
}

// CastVote records userID's vote for candidateID. Checks run in order and the
// first failing one aborts the call before any state is touched.
func (s *VotingService) CastVote(ctx context.Context, candidateID, userID string) error {
	// 1. Candidate must exist.
	candidate, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("cast vote: %w", err)
	}

	// 2. Caller must exist.
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("cast vote: %w", err)
	}

	// 3. Admins manage candidates, they do not vote.
	if user.IsAdmin() {
		s.log.Warn().Str("user_id", userID).Msg("admin attempted to vote")
		return fmt.Errorf("cast vote: admin is not allowed to vote: %w", domain.ErrForbidden)
	}

	// 4. One vote per user.
	if user.HasVoted {
		s.log.Warn().Str("user_id", userID).Str("candidate_id", candidateID).Msg("repeat vote rejected")
		return fmt.Errorf("cast vote: %w", domain.ErrAlreadyVoted)
	}

	// 5. Serialise attempts for the same user. The conditional write below is
	// still authoritative, so a lock backend outage only degrades to it.
	token, locked, err := s.lock.Acquire(ctx, userID)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("user_id", userID).Msg("vote lock unavailable, relying on conditional write")
	case !locked:
		return fmt.Errorf("cast vote: %w", domain.ErrVoteInProgress)
	default:
		defer func() {
			if relErr := s.lock.Release(context.WithoutCancel(ctx), userID, token); relErr != nil {
				s.log.Warn().Err(relErr).Str("user_id", userID).Msg("failed to release vote lock")
			}
		}()
	}

	// 6. Flag flip + tally increment + entry append as one unit.
	now := time.Now().UTC()
	if err := s.recorder.RecordVote(ctx, candidate.ID, user.ID, now); err != nil {
		return fmt.Errorf("cast vote: %w", err)
	}

	s.audit.Publish(domain.AuditEvent{
		Action:      domain.AuditVoteCast,
		ActorID:     user.ID,
		CandidateID: candidate.ID,
		At:          now,
	})

	s.log.Info().
		Str("candidate_id", candidate.ID).
		Str("party", candidate.Party).
		Str("user_id", user.ID).
		Msg("vote recorded")

	return nil
}
