package memory

import (
	"strings"
	"sync"

	"github.com/stayfront/mockstay/internal/domain"
)

// Store is the process-lifetime fixture store. One RWMutex guards every
// table so the count+1 id scheme stays atomic under concurrent requests.
type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	hotels   []domain.Hotel
	rooms    []domain.Room
	bookings []domain.Booking
	reviews  []domain.Review
}

func New() *Store {
	s := &Store{users: map[string]domain.User{}}
	seed(s)
	return s
}

func (s *Store) FindUser(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}

func (s *Store) AddUser(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Username]; exists {
		return domain.User{}, domain.ErrDuplicateUser
	}
	u.ID = len(s.users) + 1
	s.users[u.Username] = u
	return u, nil
}

func (s *Store) FindHotel(id int) (domain.Hotel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (s *Store) ListHotels(cityFilter string) []domain.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hotel, 0, len(s.hotels))
	needle := strings.ToLower(cityFilter)
	for _, h := range s.hotels {
		if needle == "" || strings.Contains(strings.ToLower(h.City), needle) {
			out = append(out, h)
		}
	}
	return out
}

func (s *Store) ListRooms(hotelID int) []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Room{}
	for _, r := range s.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) FindRoom(id int) (domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Room{}, false
}

func (s *Store) AppendBooking(b domain.Booking) domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = len(s.bookings) + 1
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) ListBookings(userID int) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) AppendReview(r domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.reviews) + 1
	s.reviews = append(s.reviews, r)
	return r
}

func (s *Store) ListReviews(hotelID int) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, r := range s.reviews {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}
