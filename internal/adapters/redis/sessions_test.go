package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/stayfront/mockstay/internal/adapters/redis"
	"github.com/stayfront/mockstay/internal/domain"
)

func newTestSessions(t *testing.T) *redisad.Sessions {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewSessions(mr.Addr(), "", 0, "session:")
}

func TestRedisSessions_Roundtrip(t *testing.T) {
	ctx := context.Background()
	sess := newTestSessions(t)

	u := domain.User{ID: 2, Username: "user1", Role: domain.RoleUser, Email: "user1@email.com"}
	tok, err := sess.Create(ctx, u)
	if err != nil || tok == "" {
		t.Fatalf("Create: token=%q err=%v", tok, err)
	}

	got, ok, err := sess.Resolve(ctx, tok)
	if err != nil || !ok {
		t.Fatalf("Resolve: ok=%v err=%v", ok, err)
	}
	if got != u {
		t.Fatalf("roundtrip mismatch: %+v != %+v", got, u)
	}
}

func TestRedisSessions_UnknownToken(t *testing.T) {
	ctx := context.Background()
	sess := newTestSessions(t)

	if _, ok, err := sess.Resolve(ctx, "no-such-token"); ok || err != nil {
		t.Fatalf("unknown token: ok=%v err=%v", ok, err)
	}
}

func TestRedisSessions_DestroyIdempotent(t *testing.T) {
	ctx := context.Background()
	sess := newTestSessions(t)

	tok, err := sess.Create(ctx, domain.User{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := sess.Destroy(ctx, tok); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, ok, _ := sess.Resolve(ctx, tok); ok {
		t.Fatal("token survived destroy")
	}
	if err := sess.Destroy(ctx, tok); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
}

func TestRedisSessions_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	sess := newTestSessions(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		tok, err := sess.Create(ctx, domain.User{ID: i})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
