package app

import (
	"fmt"

	"github.com/stayfront/mockstay/internal/domain"
)

// The seed schema predates a few fields the frontend renders, so read paths
// fill them with fixed placeholders. Kept as named constants rather than
// ad hoc injected values.
const (
	PlaceholderCountry       = "USA"
	PlaceholderMinPrice      = 99
	PlaceholderNightlyPrice  = 150
	PlaceholderRoomCapacity  = 2
	PlaceholderRoomsOnHand   = 5
	PlaceholderRoomAmenities = "WiFi, TV, AC"

	UnknownHotelName = "Unknown Hotel"
	UnknownRoomType  = "Unknown Room"
)

// BookingCode renders the display code for a booking id, e.g. 1 -> "BK000001".
func BookingCode(id int) string { return fmt.Sprintf("BK%06d", id) }

// Profile is the reduced user payload returned by the session check.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func NewProfile(u domain.User) Profile {
	return Profile{ID: u.ID, Username: u.Username, Role: u.Role, Email: u.Email}
}

// RoomView reshapes a seed room for the hotel-detail payload.
type RoomView struct {
	ID             int     `json:"id"`
	RoomType       string  `json:"room_type"`
	PricePerNight  float64 `json:"price_per_night"`
	Capacity       int     `json:"capacity"`
	AvailableRooms int     `json:"available_rooms"`
	Amenities      string  `json:"amenities"`
}

// HotelSummary is a catalog hotel plus placeholder pricing and its raw rooms.
type HotelSummary struct {
	domain.Hotel
	Country       string        `json:"country"`
	MinPrice      int           `json:"min_price"`
	PricePerNight int           `json:"price_per_night"`
	Rooms         []domain.Room `json:"rooms"`
}

// HotelDetail is the by-id payload with reshaped rooms and reviews attached.
type HotelDetail struct {
	domain.Hotel
	Country       string          `json:"country"`
	MinPrice      int             `json:"min_price"`
	PricePerNight int             `json:"price_per_night"`
	Rooms         []RoomView      `json:"rooms"`
	Reviews       []domain.Review `json:"reviews"`
}

// BookingView is a stored booking plus the display fields the frontend
// expects: hotel/room names, the BK code, and aliased date fields.
type BookingView struct {
	domain.Booking
	HotelName    string `json:"hotel_name"`
	RoomType     string `json:"room_type"`
	BookingID    string `json:"booking_id"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	BookingDate  string `json:"booking_date"`
}

func roomView(r domain.Room) RoomView {
	return RoomView{
		ID:             r.ID,
		RoomType:       r.Type,
		PricePerNight:  r.Price,
		Capacity:       PlaceholderRoomCapacity,
		AvailableRooms: PlaceholderRoomsOnHand,
		Amenities:      PlaceholderRoomAmenities,
	}
}
