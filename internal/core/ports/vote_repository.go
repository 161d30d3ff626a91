package ports

import (
	"context"
	"time"
)

// VoteRecorder applies the cast-vote state transition as one atomic unit:
// flip the user's has_voted flag (only if currently false) and append a vote
// entry while incrementing the candidate tally.
//
// Implementations return domain.ErrAlreadyVoted when the flag was already set
// and domain.ErrCandidateNotFound when the candidate vanished; in both cases
// no state is changed.
type VoteRecorder interface {
	RecordVote(ctx context.Context, candidateID, userID string, at time.Time) error
}

// VoteLock serialises vote attempts per user ahead of the atomic write.
type VoteLock interface {
	// Acquire returns an ownership token and false when the lock is held elsewhere.
	Acquire(ctx context.Context, userID string) (token string, ok bool, err error)
	Release(ctx context.Context, userID, token string) error
}
