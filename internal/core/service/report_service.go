package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// ReportService reads the candidate registry directly; it never goes through
// the voting engine.
type ReportService struct {
	repo ports.CandidateRepository
}

func NewReportService(repo ports.CandidateRepository) *ReportService {
	return &ReportService{repo: repo}
}

// ListResults returns {party, count} rows ordered by count descending.
// Ties keep candidate creation order.
func (s *ReportService) ListResults(ctx context.Context) ([]domain.PartyResult, error) {
	candidates, err := s.repo.ListByVoteCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	results := make([]domain.PartyResult, len(candidates))
	for i, c := range candidates {
		results[i] = domain.PartyResult{Party: c.Party, Count: c.VoteCount}
	}
	// Stable, so adapters that return creation order keep it for ties.
	slices.SortStableFunc(results, func(a, b domain.PartyResult) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return results, nil
}

// ListCandidates returns the public roster: name and party only.
func (s *ReportService) ListCandidates(ctx context.Context) ([]domain.RosterEntry, error) {
	roster, err := s.repo.ListRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return roster, nil
}
