package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/civicvote/voting-system/internal/core/domain"
)

type stubVotingService struct {
	castFn func(ctx context.Context, candidateID, userID string) error
}

func (s *stubVotingService) CastVote(ctx context.Context, candidateID, userID string) error {
	return s.castFn(ctx, candidateID, userID)
}

func TestVoteHandler_Cast_Success(t *testing.T) {
	var gotCandidate, gotUser string
	stub := &stubVotingService{
		castFn: func(_ context.Context, candidateID, userID string) error {
			gotCandidate, gotUser = candidateID, userID
			return nil
		},
	}
	c, rec := newContext(http.MethodPost, "/candidates/vote/c1", "", "u1")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := NewVoteHandler(stub).Cast(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotCandidate != "c1" || gotUser != "u1" {
		t.Fatalf("unexpected args: %s %s", gotCandidate, gotUser)
	}
}

func TestVoteHandler_Cast_PropagatesRejections(t *testing.T) {
	for _, want := range []error{
		domain.ErrCandidateNotFound,
		domain.ErrUserNotFound,
		domain.ErrForbidden,
		domain.ErrAlreadyVoted,
		domain.ErrVoteInProgress,
	} {
		stub := &stubVotingService{
			castFn: func(context.Context, string, string) error {
				return fmt.Errorf("cast vote: %w", want)
			},
		}
		c, _ := newContext(http.MethodPost, "/candidates/vote/c1", "", "u1")
		c.SetParamNames("id")
		c.SetParamValues("c1")

		if err := NewVoteHandler(stub).Cast(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestRejectionReason(t *testing.T) {
	cases := map[error]string{
		domain.ErrAlreadyVoted:        "already_voted",
		domain.ErrForbidden:           "admin_forbidden",
		domain.ErrCandidateNotFound:   "candidate_not_found",
		errors.New("mongo: timeout"): "error",
	}
	for err, want := range cases {
		if got := rejectionReason(fmt.Errorf("wrap: %w", err)); got != want {
			t.Fatalf("rejectionReason(%v) = %s, want %s", err, got, want)
		}
	}
}
