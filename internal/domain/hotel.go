package domain

type Hotel struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Amenities   string  `json:"amenities"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

type Room struct {
	ID          int     `json:"id"`
	HotelID     int     `json:"hotel_id"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	Description string  `json:"description"`
}
