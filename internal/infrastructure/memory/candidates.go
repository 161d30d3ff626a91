package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// Candidates exposes the candidate side of the store under the
// ports.CandidateRepository method names, which collide with the user ones.
type Candidates struct {
	s *Store
}

// Candidates returns the candidate repository view of the store.
func (s *Store) Candidates() *Candidates {
	return &Candidates{s: s}
}

func cloneCandidate(c domain.Candidate) *domain.Candidate {
	c.Votes = slices.Clone(c.Votes)
	if c.Votes == nil {
		c.Votes = []domain.VoteEntry{}
	}
	return &c
}

func (r *Candidates) Create(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seq++
	stored := *cloneCandidate(*c)
	stored.ID = uuid.NewString()
	stored.Votes = []domain.VoteEntry{}
	stored.VoteCount = 0
	r.s.candidates[stored.ID] = candidateRecord{seq: r.s.seq, candidate: stored}
	return cloneCandidate(stored), nil
}

func (r *Candidates) FindByID(_ context.Context, id string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return cloneCandidate(rec.candidate), nil
}

func (r *Candidates) UpdateFields(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.candidates[c.ID]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	rec.candidate.Name = c.Name
	rec.candidate.Party = c.Party
	rec.candidate.Age = c.Age
	rec.candidate.UpdatedAt = c.UpdatedAt
	r.s.candidates[c.ID] = rec
	return cloneCandidate(rec.candidate), nil
}

func (r *Candidates) Delete(_ context.Context, id string) (*domain.Candidate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	if rec.candidate.VoteCount > 0 {
		return nil, domain.ErrCandidateHasVotes
	}
	delete(r.s.candidates, id)
	return cloneCandidate(rec.candidate), nil
}

func (r *Candidates) ListByVoteCount(_ context.Context) ([]*domain.Candidate, error) {
	recs := r.s.ordered()
	slices.SortStableFunc(recs, func(a, b candidateRecord) int {
		return b.candidate.VoteCount - a.candidate.VoteCount
	})

	out := make([]*domain.Candidate, len(recs))
	for i, rec := range recs {
		out[i] = cloneCandidate(rec.candidate)
	}
	return out, nil
}

func (r *Candidates) ListRoster(_ context.Context) ([]domain.RosterEntry, error) {
	recs := r.s.ordered()
	out := make([]domain.RosterEntry, len(recs))
	for i, rec := range recs {
		out[i] = domain.RosterEntry{Name: rec.candidate.Name, Party: rec.candidate.Party}
	}
	return out, nil
}

// RecordVote flips the user flag and appends the vote under a single lock.
func (s *Store) RecordVote(_ context.Context, candidateID, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.HasVoted {
		return domain.ErrAlreadyVoted
	}
	rec, ok := s.candidates[candidateID]
	if !ok {
		return domain.ErrCandidateNotFound
	}

	rec.candidate.Votes = slices.Clone(rec.candidate.Votes)
	rec.candidate.RecordVote(userID, at)
	s.candidates[candidateID] = rec

	u.HasVoted = true
	u.UpdatedAt = at
	s.users[userID] = u
	return nil
}

// ordered returns candidate records in insertion order.
func (s *Store) ordered() []candidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]candidateRecord, 0, len(s.candidates))
	for _, rec := range s.candidates {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b candidateRecord) int {
		return int(a.seq - b.seq)
	})
	return recs
}
