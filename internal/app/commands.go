package app

import (
	"context"
	"time"

	"github.com/stayfront/mockstay/internal/adapters/observability"
	"github.com/stayfront/mockstay/internal/domain"
)

// AuthService owns the credential checks and the session lifecycle.
type AuthService struct {
	store    domain.Store
	sessions domain.SessionStore
}

func NewAuthService(s domain.Store, sess domain.SessionStore) *AuthService {
	return &AuthService{store: s, sessions: sess}
}

// Login does an exact plaintext match against the user table. This is a mock
// backend; credentials are documented fixtures, not secrets.
func (a *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	u, ok := a.store.FindUser(username)
	if !ok || u.Password != password {
		observability.ObserveSession("denied")
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	token, err := a.sessions.Create(ctx, u)
	if err != nil {
		return domain.User{}, "", err
	}
	observability.ObserveSession("login")
	return u, token, nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Register creates the user and logs them straight in. Duplicate usernames
// are rejected before any session exists for them.
func (a *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.User, string, error) {
	u, err := a.store.AddUser(domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     domain.RoleUser,
	})
	if err != nil {
		return domain.User{}, "", err
	}
	observability.ObserveAppend("user")
	token, err := a.sessions.Create(ctx, u)
	if err != nil {
		return domain.User{}, "", err
	}
	observability.ObserveSession("register")
	return u, token, nil
}

// Logout is idempotent: destroying an unknown token is still a success.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := a.sessions.Destroy(ctx, token); err != nil {
		return err
	}
	observability.ObserveSession("logout")
	return nil
}

// Authenticate resolves a bearer token to its user.
func (a *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrNoSession
	}
	u, ok, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		observability.ObserveSession("denied")
		return domain.User{}, domain.ErrNoSession
	}
	return u, nil
}

// CommandService owns the append-only write paths.
type CommandService struct {
	store domain.Store
	now   func() time.Time
}

func NewCommandService(s domain.Store) *CommandService {
	return &CommandService{store: s, now: time.Now}
}

type BookingRequest struct {
	HotelID    int     `json:"hotel_id"`
	RoomID     int     `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
}

// CreateBooking appends a confirmed booking for the user. Hotel and room ids
// are taken as-is; the catalog is not consulted at write time.
func (s *CommandService) CreateBooking(user domain.User, req BookingRequest) domain.Booking {
	b := s.store.AppendBooking(domain.Booking{
		UserID:     user.ID,
		HotelID:    req.HotelID,
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  s.now().Format(time.RFC3339),
	})
	observability.ObserveAppend("booking")
	return b
}

type ReviewRequest struct {
	HotelID int    `json:"hotel_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *CommandService) CreateReview(user domain.User, req ReviewRequest) domain.Review {
	r := s.store.AppendReview(domain.Review{
		HotelID: req.HotelID,
		UserID:  user.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    s.now().Format("2006-01-02"),
	})
	observability.ObserveAppend("review")
	return r
}
