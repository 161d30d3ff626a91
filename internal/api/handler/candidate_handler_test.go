package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

type stubCandidateService struct {
	createFn func(ctx context.Context, actorID string, in ports.CreateCandidateInput) (*domain.Candidate, error)
	updateFn func(ctx context.Context, actorID, id string, patch domain.CandidatePatch) (*domain.Candidate, error)
	deleteFn func(ctx context.Context, actorID, id string) (*domain.Candidate, error)
}

func (s *stubCandidateService) CreateCandidate(ctx context.Context, actorID string, in ports.CreateCandidateInput) (*domain.Candidate, error) {
	return s.createFn(ctx, actorID, in)
}

func (s *stubCandidateService) UpdateCandidate(ctx context.Context, actorID, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	return s.updateFn(ctx, actorID, id, patch)
}

func (s *stubCandidateService) DeleteCandidate(ctx context.Context, actorID, id string) (*domain.Candidate, error) {
	return s.deleteFn(ctx, actorID, id)
}

func TestCandidateHandler_Create(t *testing.T) {
	stub := &stubCandidateService{
		createFn: func(_ context.Context, actorID string, in ports.CreateCandidateInput) (*domain.Candidate, error) {
			if actorID != "admin-1" {
				t.Fatalf("unexpected actor: %s", actorID)
			}
			return &domain.Candidate{ID: "c1", Name: in.Name, Party: in.Party, Age: in.Age, Votes: []domain.VoteEntry{}}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/candidates", `{"name":"Asha","party":"Green","age":45}`, "admin-1")

	if err := NewCandidateHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp candidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "c1" || resp.Party != "Green" || resp.VoteCount != 0 || resp.Votes == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCandidateHandler_Create_RejectsTallyFields(t *testing.T) {
	stub := &stubCandidateService{
		createFn: func(context.Context, string, ports.CreateCandidateInput) (*domain.Candidate, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}

	bodies := []string{
		`{"name":"Asha","party":"Green","age":45,"vote_count":100}`,
		`{"name":"Asha","party":"Green","age":45,"votes":[{"user":"x"}]}`,
		`{"name":"Asha","party":"Green","age":17}`,
		`{"party":"Green","age":45}`,
	}
	for _, body := range bodies {
		c, _ := newContext(http.MethodPost, "/candidates", body, "admin-1")
		if err := NewCandidateHandler(stub).Create(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %s: expected ErrValidation, got %v", body, err)
		}
	}
}

func TestCandidateHandler_Create_RequiresUser(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/candidates", `{"name":"Asha","party":"Green","age":45}`, "")
	err := NewCandidateHandler(&stubCandidateService{}).Create(c)
	if statusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCandidateHandler_Update(t *testing.T) {
	stub := &stubCandidateService{
		updateFn: func(_ context.Context, _ string, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
			if id != "c1" {
				return nil, domain.ErrCandidateNotFound
			}
			if patch.Name != nil || patch.Age != nil || patch.Party == nil || *patch.Party != "Blue" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &domain.Candidate{ID: id, Name: "Asha", Party: *patch.Party, Age: 45}, nil
		},
	}
	h := NewCandidateHandler(stub)

	c, rec := newContext(http.MethodPut, "/candidates/c1", `{"party":"Blue"}`, "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(http.MethodPut, "/candidates/zz", `{"party":"Blue"}`, "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("zz")
	if err := h.Update(c); !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}

	c, _ = newContext(http.MethodPut, "/candidates/c1", `{"age":200}`, "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	if err := h.Update(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCandidateHandler_Delete(t *testing.T) {
	stub := &stubCandidateService{
		deleteFn: func(_ context.Context, _ string, id string) (*domain.Candidate, error) {
			return &domain.Candidate{ID: id, Name: "Asha", Party: "Green", Age: 45, VoteCount: 2}, nil
		},
	}
	c, rec := newContext(http.MethodDelete, "/candidates/c1", "", "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := NewCandidateHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp candidateResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusOK || resp.ID != "c1" || resp.VoteCount != 2 {
		t.Fatalf("unexpected response %d: %+v", rec.Code, resp)
	}
}
