package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 10 * time.Second

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired lock re-acquired by another request is never released early.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// VoteLock provides per-user mutual exclusion for vote casting backed by Redis.
// Key format: vote:lock:<user_id>
type VoteLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVoteLock creates a VoteLock wrapping the given Redis client.
func NewVoteLock(client *redis.Client, ttl time.Duration) *VoteLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &VoteLock{client: client, ttl: ttl}
}

// Acquire takes the lock for userID; ok is false when another request holds it.
func (l *VoteLock) Acquire(ctx context.Context, userID string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key(userID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("vote lock acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the lock if token still owns it.
func (l *VoteLock) Release(ctx context.Context, userID, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key(userID)}, token).Err(); err != nil {
		return fmt.Errorf("vote lock release: %w", err)
	}
	return nil
}

func (l *VoteLock) key(userID string) string {
	return fmt.Sprintf("vote:lock:%s", userID)
}
