package domain

type Booking struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	HotelID    int     `json:"hotel_id"`
	RoomID     int     `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"` // RFC 3339
}

const BookingStatusConfirmed = "confirmed"
