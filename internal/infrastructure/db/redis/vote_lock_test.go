package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestVoteLock_Key(t *testing.T) {
	l := NewVoteLock(nil, 0)
	if got := l.key("u1"); got != "vote:lock:u1" {
		t.Fatalf("unexpected key: %s", got)
	}
	if l.ttl != defaultLockTTL {
		t.Fatalf("expected default ttl, got %s", l.ttl)
	}
}

func TestVoteLock_BackendErrorIsReported(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewVoteLock(client, time.Second)
	token, ok, err := l.Acquire(context.Background(), "u1")
	if err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
	if ok || token != "" {
		t.Fatalf("lock must not be reported as held on error")
	}
	if err := l.Release(context.Background(), "u1", "t"); err == nil {
		t.Fatalf("expected release error from unreachable redis")
	}
}
