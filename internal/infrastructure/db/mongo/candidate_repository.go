package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civicvote/voting-system/internal/core/domain"
)

type CandidateRepository struct {
	col *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{col: db.Collection(collectionCandidates)}
}

type mongoVote struct {
	User    primitive.ObjectID `bson:"user"`
	VotedAt time.Time          `bson:"voted_at"`
}

type mongoCandidate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Party     string             `bson:"party"`
	Age       int                `bson:"age"`
	Votes     []mongoVote        `bson:"votes"`
	VoteCount int                `bson:"vote_count"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mc *mongoCandidate) toDomain() *domain.Candidate {
	votes := make([]domain.VoteEntry, len(mc.Votes))
	for i, v := range mc.Votes {
		votes[i] = domain.VoteEntry{UserID: v.User.Hex(), VotedAt: v.VotedAt.UTC()}
	}
	return &domain.Candidate{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Party:     mc.Party,
		Age:       mc.Age,
		Votes:     votes,
		VoteCount: mc.VoteCount,
		CreatedAt: mc.CreatedAt.UTC(),
		UpdatedAt: mc.UpdatedAt.UTC(),
	}
}

// Create inserts a new candidate with an empty tally.
func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCandidate{
		ID:        primitive.NewObjectID(),
		Name:      c.Name,
		Party:     c.Party,
		Age:       c.Age,
		Votes:     []mongoVote{},
		VoteCount: 0,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert candidate: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCandidateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCandidate
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}
	return mc.toDomain(), nil
}

// UpdateFields sets name, party and age and returns the stored document.
func (r *CandidateRepository) UpdateFields(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrCandidateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       c.Name,
		"party":      c.Party,
		"age":        c.Age,
		"updated_at": c.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mc mongoCandidate
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return mc.toDomain(), nil
}

// Delete removes the candidate and returns the document as it was. The
// filter on vote_count makes the check and the delete one write, so a vote
// landing concurrently either blocks the delete or fails with NotFound.
func (r *CandidateRepository) Delete(ctx context.Context, id string) (*domain.Candidate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCandidateNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCandidate
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid, "vote_count": 0}).Decode(&mc)
	if err == nil {
		return mc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("delete candidate: %w", err)
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete candidate: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrCandidateNotFound
	}
	return nil, domain.ErrCandidateHasVotes
}

// ListByVoteCount sorts by vote_count desc; _id asc keeps creation order on ties.
func (r *CandidateRepository) ListByVoteCount(ctx context.Context) ([]*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "vote_count", Value: -1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"votes": 0})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCandidate
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	out := make([]*domain.Candidate, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

// ListRoster projects name and party only; _id is excluded server-side.
func (r *CandidateRepository) ListRoster(ctx context.Context) ([]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1, "party": 1, "_id": 0})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Name  string `bson:"name"`
		Party string `bson:"party"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	out := make([]domain.RosterEntry, len(docs))
	for i, d := range docs {
		out[i] = domain.RosterEntry{Name: d.Name, Party: d.Party}
	}
	return out, nil
}
