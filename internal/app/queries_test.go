package app_test

import (
	"context"
	"testing"

	"github.com/stayfront/mockstay/internal/app"
	"github.com/stayfront/mockstay/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	users    map[string]domain.User
	hotels   []domain.Hotel
	rooms    []domain.Room
	bookings []domain.Booking
	reviews  []domain.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: map[string]domain.User{
			"user1": {ID: 2, Username: "user1", Password: "password", Role: domain.RoleUser},
		},
		hotels: []domain.Hotel{
			{ID: 1, Name: "Grand Hotel", City: "New York"},
			{ID: 2, Name: "Beach Resort", City: "Miami"},
		},
		rooms: []domain.Room{
			{ID: 1, HotelID: 1, Type: "Standard Room", Price: 150},
			{ID: 2, HotelID: 1, Type: "Deluxe Room", Price: 200},
		},
		reviews: []domain.Review{
			{ID: 1, HotelID: 1, UserID: 2, Rating: 5, Comment: "Excellent service!"},
		},
	}
}

func (f *fakeStore) FindUser(username string) (domain.User, bool) {
	u, ok := f.users[username]
	return u, ok
}

func (f *fakeStore) AddUser(u domain.User) (domain.User, error) {
	if _, ok := f.users[u.Username]; ok {
		return domain.User{}, domain.ErrDuplicateUser
	}
	u.ID = len(f.users) + 1
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeStore) FindHotel(id int) (domain.Hotel, bool) {
	for _, h := range f.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (f *fakeStore) ListHotels(city string) []domain.Hotel { return f.hotels }

func (f *fakeStore) ListRooms(hotelID int) []domain.Room {
	var out []domain.Room
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeStore) FindRoom(id int) (domain.Room, bool) {
	for _, r := range f.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Room{}, false
}

func (f *fakeStore) AppendBooking(b domain.Booking) domain.Booking {
	b.ID = len(f.bookings) + 1
	f.bookings = append(f.bookings, b)
	return b
}

func (f *fakeStore) ListBookings(userID int) []domain.Booking {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeStore) AppendReview(r domain.Review) domain.Review {
	r.ID = len(f.reviews) + 1
	f.reviews = append(f.reviews, r)
	return r
}

func (f *fakeStore) ListReviews(hotelID int) []domain.Review {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

type fakeSessions struct {
	tokens map[string]domain.User
	n      int
}

func (s *fakeSessions) Create(_ context.Context, u domain.User) (string, error) {
	if s.tokens == nil {
		s.tokens = map[string]domain.User{}
	}
	s.n++
	tok := "tok-" + string(rune('a'+s.n))
	s.tokens[tok] = u
	return tok, nil
}

func (s *fakeSessions) Resolve(_ context.Context, token string) (domain.User, bool, error) {
	u, ok := s.tokens[token]
	return u, ok, nil
}

func (s *fakeSessions) Destroy(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

// ---- tests ----

func TestHotelDetail_Enrichment(t *testing.T) {
	q := app.NewQueryService(newFakeStore())

	d, err := q.HotelDetail(1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d.Name != "Grand Hotel" || d.Country != app.PlaceholderCountry {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if d.MinPrice != app.PlaceholderMinPrice || d.PricePerNight != app.PlaceholderNightlyPrice {
		t.Fatalf("placeholder pricing missing: %+v", d)
	}
	if len(d.Rooms) != 2 {
		t.Fatalf("rooms: got %d, want 2", len(d.Rooms))
	}
	r := d.Rooms[0]
	if r.RoomType != "Standard Room" || r.PricePerNight != 150 ||
		r.Capacity != app.PlaceholderRoomCapacity ||
		r.AvailableRooms != app.PlaceholderRoomsOnHand ||
		r.Amenities != app.PlaceholderRoomAmenities {
		t.Fatalf("unexpected room view: %+v", r)
	}
	if len(d.Reviews) != 1 {
		t.Fatalf("reviews: got %d, want 1", len(d.Reviews))
	}
}

func TestHotelDetail_NotFound(t *testing.T) {
	q := app.NewQueryService(newFakeStore())
	if _, err := q.HotelDetail(404); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchHotels_CarriesRawRooms(t *testing.T) {
	q := app.NewQueryService(newFakeStore())

	out := q.SearchHotels("")
	if len(out) != 2 {
		t.Fatalf("hotels: got %d, want 2", len(out))
	}
	if out[0].Country != app.PlaceholderCountry || len(out[0].Rooms) != 2 {
		t.Fatalf("unexpected summary: %+v", out[0])
	}
	// search payload keeps seed room fields, not the reshaped view
	if out[0].Rooms[0].Type != "Standard Room" {
		t.Fatalf("raw room expected: %+v", out[0].Rooms[0])
	}
}

func TestUserBookings_EnrichmentAndUnknowns(t *testing.T) {
	st := newFakeStore()
	q := app.NewQueryService(st)

	st.AppendBooking(domain.Booking{UserID: 2, HotelID: 1, RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05", CreatedAt: "2024-02-01T10:00:00Z"})
	st.AppendBooking(domain.Booking{UserID: 2, HotelID: 77, RoomID: 88})

	out := q.UserBookings(2)
	if len(out) != 2 {
		t.Fatalf("bookings: got %d, want 2", len(out))
	}
	b := out[0]
	if b.HotelName != "Grand Hotel" || b.RoomType != "Standard Room" {
		t.Fatalf("enrichment: %+v", b)
	}
	if b.BookingID != "BK000001" {
		t.Fatalf("booking code: %q", b.BookingID)
	}
	if b.CheckinDate != "2024-03-01" || b.CheckoutDate != "2024-03-05" || b.BookingDate != "2024-02-01T10:00:00Z" {
		t.Fatalf("date aliases: %+v", b)
	}
	// dangling foreign keys fall back to the Unknown labels
	if out[1].HotelName != app.UnknownHotelName || out[1].RoomType != app.UnknownRoomType {
		t.Fatalf("unknown fallbacks: %+v", out[1])
	}
}

func TestBookingCode(t *testing.T) {
	if got := app.BookingCode(1); got != "BK000001" {
		t.Fatalf("BookingCode(1) = %q", got)
	}
	if got := app.BookingCode(123456); got != "BK123456" {
		t.Fatalf("BookingCode(123456) = %q", got)
	}
}
