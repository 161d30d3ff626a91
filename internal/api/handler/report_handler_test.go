package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/civicvote/voting-system/internal/core/domain"
)

type stubReportService struct {
	results []domain.PartyResult
	roster  []domain.RosterEntry
}

func (s *stubReportService) ListResults(context.Context) ([]domain.PartyResult, error) {
	return s.results, nil
}

func (s *stubReportService) ListCandidates(context.Context) ([]domain.RosterEntry, error) {
	return s.roster, nil
}

func TestReportHandler_Results(t *testing.T) {
	stub := &stubReportService{results: []domain.PartyResult{{Party: "Blue", Count: 3}, {Party: "Green", Count: 1}}}
	c, rec := newContext(http.MethodGet, "/candidates/vote/count", "", "")

	if err := NewReportHandler(stub).Results(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := `[{"party":"Blue","count":3},{"party":"Green","count":1}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestReportHandler_Roster(t *testing.T) {
	stub := &stubReportService{roster: []domain.RosterEntry{{Name: "Asha", Party: "Green"}}}
	c, rec := newContext(http.MethodGet, "/candidates/candidateList", "", "")

	if err := NewReportHandler(stub).Roster(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := `[{"name":"Asha","party":"Green"}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestReportHandler_EmptyIsArray(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/candidates/vote/count", "", "")
	if err := NewReportHandler(&stubReportService{}).Results(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}
