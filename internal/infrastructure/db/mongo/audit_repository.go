package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// AuditRepository writes audit events to the audit_events collection.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) InsertAudit(ctx context.Context, event *domain.AuditEvent) error {
	doc := bson.M{
		"action":       string(event.Action),
		"actor_id":     event.ActorID,
		"candidate_id": event.CandidateID,
		"at":           event.At.UTC(),
		"recorded_at":  time.Now().UTC(),
	}

	_, err := r.db.Collection(collectionAudit).InsertOne(ctx, doc)
	return err
}
