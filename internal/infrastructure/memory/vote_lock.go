package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lockEntry struct {
	token     string
	expiresAt time.Time
}

// VoteLock is a process-local per-user lock with expiry.
type VoteLock struct {
	mu    sync.Mutex
	ttl   time.Duration
	locks map[string]lockEntry
}

func NewVoteLock(ttl time.Duration) *VoteLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &VoteLock{ttl: ttl, locks: make(map[string]lockEntry)}
}

func (l *VoteLock) Acquire(_ context.Context, userID string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if e, held := l.locks[userID]; held && now.Before(e.expiresAt) {
		return "", false, nil
	}
	token := uuid.NewString()
	l.locks[userID] = lockEntry{token: token, expiresAt: now.Add(l.ttl)}
	return token, true, nil
}

// Release drops the lock only if token still owns it.
func (l *VoteLock) Release(_ context.Context, userID, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, held := l.locks[userID]; held && e.token == token {
		delete(l.locks, userID)
	}
	return nil
}
