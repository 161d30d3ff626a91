package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// offlineDB returns a database handle whose client never reaches a server.
// mongo.Connect is lazy, so only calls that short-circuit before I/O are safe.
func offlineDB(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("voting_test")
}

func TestMongoCandidate_ToDomain(t *testing.T) {
	voter := primitive.NewObjectID()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	mc := mongoCandidate{
		ID:        primitive.NewObjectID(),
		Name:      "Asha",
		Party:     "Green",
		Age:       45,
		Votes:     []mongoVote{{User: voter, VotedAt: at}},
		VoteCount: 1,
	}

	c := mc.toDomain()
	if c.ID != mc.ID.Hex() || c.VoteCount != 1 {
		t.Fatalf("unexpected mapping: %+v", c)
	}
	if c.Votes[0].UserID != voter.Hex() || c.Votes[0].VotedAt.Location() != time.UTC {
		t.Fatalf("vote entry not mapped to UTC hex id: %+v", c.Votes[0])
	}

	empty := (&mongoCandidate{}).toDomain()
	if empty.Votes == nil {
		t.Fatalf("votes must be an empty slice, not nil")
	}
}

func TestMongoUser_ToDomain(t *testing.T) {
	mu := mongoUser{ID: primitive.NewObjectID(), Email: "a@example.com", Role: domain.RoleAdmin, HasVoted: true, PasswordHash: "h"}
	u := mu.toDomain()
	if u.ID != mu.ID.Hex() || !u.IsAdmin() || !u.HasVoted || u.PasswordHash != "h" {
		t.Fatalf("unexpected mapping: %+v", u)
	}
}

func TestRepositories_InvalidIDIsNotFound(t *testing.T) {
	db := offlineDB(t)
	ctx := context.Background()

	candidates := NewCandidateRepository(db)
	if _, err := candidates.FindByID(ctx, "not-an-object-id"); !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("FindByID: expected ErrCandidateNotFound, got %v", err)
	}
	if _, err := candidates.Delete(ctx, "zzz"); !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("Delete: expected ErrCandidateNotFound, got %v", err)
	}

	users := NewUserRepository(db)
	if _, err := users.FindByID(ctx, "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("FindByID: expected ErrUserNotFound, got %v", err)
	}
	if err := users.DeleteIfNotVoted(ctx, "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("DeleteIfNotVoted: expected ErrUserNotFound, got %v", err)
	}

	recorder := NewVoteRecorder(db, true, zerolog.Nop())
	valid := primitive.NewObjectID().Hex()
	if err := recorder.RecordVote(ctx, "bad", valid, time.Now()); !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("RecordVote: expected ErrCandidateNotFound, got %v", err)
	}
	if err := recorder.RecordVote(ctx, valid, "bad", time.Now()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("RecordVote: expected ErrUserNotFound, got %v", err)
	}
}

func TestAppendOutcomeUnknown(t *testing.T) {
	if appendOutcomeUnknown(domain.ErrCandidateNotFound) {
		t.Fatalf("zero-match append is definitive")
	}
	if !appendOutcomeUnknown(errors.New("append vote: connection reset")) {
		t.Fatalf("driver error must be treated as ambiguous")
	}
}

func TestResolveAppend(t *testing.T) {
	tests := []struct {
		name     string
		applied  bool
		checkErr error
		want     appendResolution
	}{
		{"entry present keeps vote", true, nil, appendApplied},
		{"entry absent rolls back", false, nil, appendMissing},
		{"check failed leaves flag", false, errors.New("timeout"), appendUnverified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveAppend(tt.applied, tt.checkErr); got != tt.want {
				t.Fatalf("resolveAppend(%v, %v) = %d, want %d", tt.applied, tt.checkErr, got, tt.want)
			}
		})
	}
}
