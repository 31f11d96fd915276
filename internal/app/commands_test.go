package app_test

import (
	"context"
	"testing"

	"github.com/stayfront/mockstay/internal/app"
	"github.com/stayfront/mockstay/internal/domain"
)

func TestLogin_Roundtrip(t *testing.T) {
	ctx := context.Background()
	auth := app.NewAuthService(newFakeStore(), &fakeSessions{})

	u, token, err := auth.Login(ctx, "user1", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != 2 || token == "" {
		t.Fatalf("unexpected login result: %+v token=%q", u, token)
	}

	got, err := auth.Authenticate(ctx, token)
	if err != nil || got.Username != "user1" {
		t.Fatalf("authenticate: %+v err=%v", got, err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	auth := app.NewAuthService(newFakeStore(), &fakeSessions{})

	if _, _, err := auth.Login(ctx, "user1", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: %v", err)
	}
	if _, _, err := auth.Login(ctx, "ghost", "password"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: %v", err)
	}
}

func TestRegister_DuplicateCreatesNoSession(t *testing.T) {
	ctx := context.Background()
	sess := &fakeSessions{}
	auth := app.NewAuthService(newFakeStore(), sess)

	if _, _, err := auth.Register(ctx, app.RegisterRequest{Username: "user1"}); err != domain.ErrDuplicateUser {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(sess.tokens) != 0 {
		t.Fatalf("duplicate register must not create a session, got %d", len(sess.tokens))
	}

	u, token, err := auth.Register(ctx, app.RegisterRequest{Username: "fresh", Password: "pw", Email: "f@x.io"})
	if err != nil || token == "" {
		t.Fatalf("register: %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("registered role: %q", u.Role)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	auth := app.NewAuthService(newFakeStore(), &fakeSessions{})

	_, token, err := auth.Login(ctx, "user1", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	// same token again, and a token that never existed
	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if err := auth.Logout(ctx, "never-issued"); err != nil {
		t.Fatalf("unknown token logout: %v", err)
	}
	if _, err := auth.Authenticate(ctx, token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestCreateBooking_ServerSetFields(t *testing.T) {
	st := newFakeStore()
	cmds := app.NewCommandService(st)
	user := domain.User{ID: 2, Username: "user1"}

	b := cmds.CreateBooking(user, app.BookingRequest{
		HotelID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05",
		Guests: 2, TotalPrice: 600,
	})
	if b.ID != 1 || b.UserID != 2 {
		t.Fatalf("booking ids: %+v", b)
	}
	if b.Status != domain.BookingStatusConfirmed {
		t.Fatalf("status: %q", b.Status)
	}
	if b.CreatedAt == "" {
		t.Fatal("created_at not set")
	}

	// the catalog is not consulted: dangling ids are stored as-is
	b2 := cmds.CreateBooking(user, app.BookingRequest{HotelID: 999, RoomID: 999})
	if b2.ID != 2 || b2.HotelID != 999 {
		t.Fatalf("second booking: %+v", b2)
	}
}

func TestCreateReview_ServerSetFields(t *testing.T) {
	st := newFakeStore()
	cmds := app.NewCommandService(st)

	r := cmds.CreateReview(domain.User{ID: 2}, app.ReviewRequest{HotelID: 1, Rating: 4, Comment: "Nice stay"})
	if r.ID != 2 { // one seeded review in the fake
		t.Fatalf("review id: %d", r.ID)
	}
	if r.UserID != 2 || len(r.Date) != len("2006-01-02") {
		t.Fatalf("server-set fields: %+v", r)
	}
}
