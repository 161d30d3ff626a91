package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second

	collectionUsers      = "users"
	collectionCandidates = "candidates"
	collectionAudit      = "audit_events"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the repositories rely on for uniqueness
// and ordering.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(indexUniqueEmail),
		},
		{
			// At most one document may carry role=admin.
			Keys: bson.D{{Key: "role", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName(indexSingleAdmin).
				SetPartialFilterExpression(bson.M{"role": "admin"}),
		},
	}
	if _, err := db.Collection(collectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	candidateIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vote_count", Value: -1}, {Key: "_id", Value: 1}}},
	}
	if _, err := db.Collection(collectionCandidates).Indexes().CreateMany(ctx, candidateIndexes); err != nil {
		return fmt.Errorf("candidate indexes: %w", err)
	}

	auditIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "candidate_id", Value: 1}, {Key: "at", Value: 1}}},
	}
	if _, err := db.Collection(collectionAudit).Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("audit indexes: %w", err)
	}
	return nil
}

// Pinger adapts a database handle to the readiness check contract.
type Pinger struct {
	db *mongo.Database
}

func NewPinger(db *mongo.Database) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Ping(ctx context.Context) error {
	if err := p.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	return p.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
