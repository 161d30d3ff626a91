package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// VoteRecorder implements ports.VoteRecorder.
//
// With transactions enabled (replica set or sharded cluster) both writes run
// inside one multi-document transaction. Otherwise the user flag is claimed
// first with a conditional update and rolled back if the candidate write fails.
type VoteRecorder struct {
	client        *mongo.Client
	users         *mongo.Collection
	candidates    *mongo.Collection
	transactional bool
	log           zerolog.Logger
}

func NewVoteRecorder(db *mongo.Database, transactional bool, log zerolog.Logger) *VoteRecorder {
	return &VoteRecorder{
		client:        db.Client(),
		users:         db.Collection(collectionUsers),
		candidates:    db.Collection(collectionCandidates),
		transactional: transactional,
		log:           log,
	}
}

func (r *VoteRecorder) RecordVote(ctx context.Context, candidateID, userID string, at time.Time) error {
	cid, err := primitive.ObjectIDFromHex(candidateID)
	if err != nil {
		return domain.ErrCandidateNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if !r.transactional {
		return r.recordWithCompensation(ctx, cid, uid, at)
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := r.markVoted(sc, uid, at); err != nil {
			return nil, err
		}
		return nil, r.appendVote(sc, cid, uid, at)
	})
	return err
}

func (r *VoteRecorder) recordWithCompensation(ctx context.Context, cid, uid primitive.ObjectID, at time.Time) error {
	if err := r.markVoted(ctx, uid, at); err != nil {
		return err
	}

	appendErr := r.appendVote(ctx, cid, uid, at)
	if appendErr == nil {
		return nil
	}

	undoCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
	defer cancel()

	// A driver error does not say whether the push reached the server, so the
	// entry is looked up before the flag is released.
	if appendOutcomeUnknown(appendErr) {
		applied, checkErr := r.voteApplied(undoCtx, cid, uid)
		switch resolveAppend(applied, checkErr) {
		case appendApplied:
			r.log.Warn().Err(appendErr).
				Str("user_id", uid.Hex()).
				Str("candidate_id", cid.Hex()).
				Msg("vote entry found after append error, keeping vote")
			return nil
		case appendUnverified:
			r.log.Error().Err(checkErr).
				Str("user_id", uid.Hex()).
				Str("candidate_id", cid.Hex()).
				Msg("could not verify vote entry, user flag left set")
			return appendErr
		}
	}

	_, undoErr := r.users.UpdateOne(undoCtx,
		bson.M{"_id": uid, "has_voted": true},
		bson.M{"$set": bson.M{"has_voted": false}},
	)
	if undoErr != nil {
		r.log.Error().Err(undoErr).
			Str("user_id", uid.Hex()).
			Str("candidate_id", cid.Hex()).
			Msg("vote compensation failed, user flag left set without a vote entry")
	}
	return appendErr
}

type appendResolution int

const (
	appendMissing appendResolution = iota
	appendApplied
	appendUnverified
)

// appendOutcomeUnknown reports whether appendVote may have written despite
// returning err. A zero match is definitive; transport errors are not.
func appendOutcomeUnknown(err error) bool {
	return !errors.Is(err, domain.ErrCandidateNotFound)
}

func resolveAppend(applied bool, checkErr error) appendResolution {
	switch {
	case checkErr != nil:
		return appendUnverified
	case applied:
		return appendApplied
	default:
		return appendMissing
	}
}

// voteApplied reports whether the candidate already holds uid's entry.
func (r *VoteRecorder) voteApplied(ctx context.Context, cid, uid primitive.ObjectID) (bool, error) {
	n, err := r.candidates.CountDocuments(ctx, bson.M{"_id": cid, "votes.user": uid})
	if err != nil {
		return false, fmt.Errorf("check vote entry: %w", err)
	}
	return n > 0, nil
}

// markVoted flips has_voted only if it is still false.
func (r *VoteRecorder) markVoted(ctx context.Context, uid primitive.ObjectID, at time.Time) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": uid, "has_voted": false},
		bson.M{"$set": bson.M{"has_voted": true, "updated_at": at}},
	)
	if err != nil {
		return fmt.Errorf("mark user voted: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.users.CountDocuments(ctx, bson.M{"_id": uid})
		if err != nil {
			return fmt.Errorf("mark user voted: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotFound
		}
		return domain.ErrAlreadyVoted
	}
	return nil
}

// appendVote increments vote_count and pushes the entry in one write.
func (r *VoteRecorder) appendVote(ctx context.Context, cid, uid primitive.ObjectID, at time.Time) error {
	res, err := r.candidates.UpdateOne(ctx,
		bson.M{"_id": cid},
		bson.M{
			"$inc":  bson.M{"vote_count": 1},
			"$push": bson.M{"votes": mongoVote{User: uid, VotedAt: at}},
			"$set":  bson.M{"updated_at": at},
		},
	)
	if err != nil {
		return fmt.Errorf("append vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}
