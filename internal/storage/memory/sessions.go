package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/stayfront/mockstay/internal/domain"
)

// Sessions is the default token->user map. No expiry: a token lives until
// logout or process exit.
type Sessions struct {
	mu sync.RWMutex
	m  map[string]domain.User
}

func NewSessions() *Sessions {
	return &Sessions{m: map[string]domain.User{}}
}

func (s *Sessions) Create(_ context.Context, u domain.User) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.m[token] = u
	s.mu.Unlock()
	return token, nil
}

func (s *Sessions) Resolve(_ context.Context, token string) (domain.User, bool, error) {
	s.mu.RLock()
	u, ok := s.m[token]
	s.mu.RUnlock()
	return u, ok, nil
}

func (s *Sessions) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.m, token)
	s.mu.Unlock()
	return nil
}
