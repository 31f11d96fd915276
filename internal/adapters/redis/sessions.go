package redisad

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/stayfront/mockstay/internal/adapters/observability"
	"github.com/stayfront/mockstay/internal/domain"
)

// Sessions keeps session records in redis instead of the in-process map.
// Records are stored without TTL, matching the no-expiry session contract.
type Sessions struct {
	c      *redis.Client
	prefix string
}

func NewSessions(addr, pass string, db int, prefix string) *Sessions {
	if prefix == "" {
		prefix = "session:"
	}
	return &Sessions{
		c:      redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		prefix: prefix,
	}
}

func (s *Sessions) Create(ctx context.Context, u domain.User) (string, error) {
	token := uuid.NewString()
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	if err := s.c.Set(ctx, s.prefix+token, b, 0).Err(); err != nil {
		return "", err
	}
	observability.ObserveCache("sessions", "set")
	return token, nil
}

func (s *Sessions) Resolve(ctx context.Context, token string) (domain.User, bool, error) {
	v, err := s.c.Get(ctx, s.prefix+token).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("sessions", "miss")
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	var u domain.User
	if err := json.Unmarshal(v, &u); err != nil {
		return domain.User{}, false, err
	}
	observability.ObserveCache("sessions", "hit")
	return u, true, nil
}

func (s *Sessions) Destroy(ctx context.Context, token string) error {
	observability.ObserveCache("sessions", "del")
	return s.c.Del(ctx, s.prefix+token).Err()
}
