// Package memory provides an in-process implementation of every storage port.
// It backs STORE_BACKEND=memory and the service tests; all mutations happen
// under one mutex, so RecordVote is atomic by construction.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/civicvote/voting-system/internal/core/domain"
)

type candidateRecord struct {
	seq       int64
	candidate domain.Candidate
}

type Store struct {
	mu sync.RWMutex

	seq        int64
	users      map[string]domain.User
	candidates map[string]candidateRecord
	audit      []domain.AuditEvent
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		candidates: make(map[string]candidateRecord),
	}
}

// Ping satisfies the readiness check contract.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Store) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	for _, u := range s.users {
		if u.Email == email {
			return nil, domain.ErrUserExists
		}
		if user.Role == domain.RoleAdmin && u.Role == domain.RoleAdmin {
			return nil, domain.ErrAdminExists
		}
	}

	clone := *user
	clone.ID = uuid.NewString()
	clone.Email = email
	s.users[clone.ID] = clone

	out := clone
	return &out, nil
}

func (s *Store) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) AdminExists(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return nil
}

func (s *Store) DeleteIfNotVoted(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.HasVoted {
		return domain.ErrUserHasVoted
	}
	delete(s.users, id)
	return nil
}

// ── Audit ─────────────────────────────────────────────────────────────────────

func (s *Store) InsertAudit(_ context.Context, event *domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, *event)
	return nil
}

// AuditEvents returns a copy of every persisted audit event.
func (s *Store) AuditEvents() []domain.AuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.audit)
}
