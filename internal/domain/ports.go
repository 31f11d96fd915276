package domain

import "context"

// Store holds the fixture catalog and everything created through the API.
// All data lives exactly as long as the process; implementations must make
// the count+1 id assignment atomic under concurrent requests.
type Store interface {
	// Users
	FindUser(username string) (User, bool)
	AddUser(u User) (User, error) // assigns id = count+1; ErrDuplicateUser on conflict

	// Catalog (immutable seed)
	FindHotel(id int) (Hotel, bool)
	ListHotels(cityFilter string) []Hotel // case-insensitive substring on city; "" = all
	ListRooms(hotelID int) []Room
	FindRoom(id int) (Room, bool)

	// Bookings
	AppendBooking(b Booking) Booking // assigns id = count+1, returns stored copy
	ListBookings(userID int) []Booking

	// Reviews
	AppendReview(r Review) Review
	ListReviews(hotelID int) []Review
}

// SessionStore maps opaque bearer tokens to users. Tokens never expire;
// they die on explicit logout or when the backing store goes away.
type SessionStore interface {
	Create(ctx context.Context, u User) (string, error)
	Resolve(ctx context.Context, token string) (User, bool, error)
	Destroy(ctx context.Context, token string) error
}
