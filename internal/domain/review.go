package domain

type Review struct {
	ID      int    `json:"id"`
	HotelID int    `json:"hotel_id"`
	UserID  int    `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"` // YYYY-MM-DD
}
