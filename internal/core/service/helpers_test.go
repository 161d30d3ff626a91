package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/infrastructure/memory"
)

// recordingPublisher captures audit events synchronously.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (p *recordingPublisher) Publish(e domain.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) actions() []domain.AuditAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AuditAction, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

func seedUser(t *testing.T, store *memory.Store, email, role, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := store.Create(context.Background(), &domain.User{
		Name:         email,
		Age:          30,
		Email:        email,
		Address:      "1 Main St",
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedCandidate(t *testing.T, store *memory.Store, name, party string) *domain.Candidate {
	t.Helper()
	c, err := store.Candidates().Create(context.Background(), &domain.Candidate{Name: name, Party: party, Age: 40})
	if err != nil {
		t.Fatalf("seed candidate %s: %v", name, err)
	}
	return c
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
