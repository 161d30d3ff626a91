package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
	"github.com/civicvote/voting-system/internal/infrastructure/memory"
)

type failingCandidateRepo struct {
	ports.CandidateRepository
	err error
}

func (r failingCandidateRepo) ListByVoteCount(context.Context) ([]*domain.Candidate, error) {
	return nil, r.err
}

func (r failingCandidateRepo) ListRoster(context.Context) ([]domain.RosterEntry, error) {
	return nil, r.err
}

func TestReportService_ListResults_OrderedByCount(t *testing.T) {
	store := memory.NewStore()
	svc := NewReportService(store.Candidates())

	green := seedCandidate(t, store, "Asha", "Green")
	blue := seedCandidate(t, store, "Ben", "Blue")
	red := seedCandidate(t, store, "Cara", "Red")
	gold := seedCandidate(t, store, "Dev", "Gold")

	now := time.Now().UTC()
	votes := []struct {
		id    string
		count int
	}{
		{green.ID, 3},
		{blue.ID, 1},
		{red.ID, 2},
		{gold.ID, 1},
	}
	n := 0
	for _, v := range votes {
		for i := 0; i < v.count; i++ {
			u := seedUser(t, store, fmt.Sprintf("voter%d@example.com", n), domain.RoleVoter, "secret1")
			n++
			if err := store.RecordVote(context.Background(), v.id, u.ID, now); err != nil {
				t.Fatalf("record vote: %v", err)
			}
		}
	}

	results, err := svc.ListResults(context.Background())
	if err != nil {
		t.Fatalf("ListResults returned error: %v", err)
	}

	// Equal counts keep creation order.
	want := []domain.PartyResult{
		{Party: "Green", Count: 3},
		{Party: "Red", Count: 2},
		{Party: "Blue", Count: 1},
		{Party: "Gold", Count: 1},
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(results))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], results[i])
		}
	}
}

func TestReportService_ListResults_Empty(t *testing.T) {
	svc := NewReportService(memory.NewStore().Candidates())

	results, err := svc.ListResults(context.Background())
	if err != nil {
		t.Fatalf("ListResults returned error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", results)
	}
}

func TestReportService_ListCandidates(t *testing.T) {
	store := memory.NewStore()
	svc := NewReportService(store.Candidates())
	seedCandidate(t, store, "Asha", "Green")
	seedCandidate(t, store, "Ben", "Blue")

	roster, err := svc.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("ListCandidates returned error: %v", err)
	}
	if len(roster) != 2 || roster[0] != (domain.RosterEntry{Name: "Asha", Party: "Green"}) {
		t.Fatalf("unexpected roster: %+v", roster)
	}
}

func TestReportService_StoreErrors(t *testing.T) {
	boom := errors.New("mongo unavailable")
	svc := NewReportService(failingCandidateRepo{err: boom})

	if _, err := svc.ListResults(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if _, err := svc.ListCandidates(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
