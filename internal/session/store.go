package session

import (
	"context"
	"sync"

	apperrors "tourquote/internal/errors"
)

// Store resolves a session token to an identity. Session persistence itself is
// an external collaborator; only this contract is depended on.
type Store interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// MemoryStore is a token-to-identity map used for local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Identity)}
}

func (s *MemoryStore) Put(token string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = id
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return &id, nil
}
