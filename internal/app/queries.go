package app

import "github.com/stayfront/mockstay/internal/domain"

// QueryService serves the read paths: hotel detail, city search, reviews,
// and the per-user booking list.
type QueryService struct {
	store domain.Store
}

func NewQueryService(s domain.Store) *QueryService {
	return &QueryService{store: s}
}

func (s *QueryService) HotelDetail(id int) (HotelDetail, error) {
	h, ok := s.store.FindHotel(id)
	if !ok {
		return HotelDetail{}, domain.ErrNotFound
	}
	rooms := s.store.ListRooms(id)
	views := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, roomView(r))
	}
	return HotelDetail{
		Hotel:         h,
		Country:       PlaceholderCountry,
		MinPrice:      PlaceholderMinPrice,
		PricePerNight: PlaceholderNightlyPrice,
		Rooms:         views,
		Reviews:       s.store.ListReviews(id),
	}, nil
}

// SearchHotels filters by case-insensitive substring on city; an empty
// filter returns the whole catalog.
func (s *QueryService) SearchHotels(city string) []HotelSummary {
	hotels := s.store.ListHotels(city)
	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelSummary{
			Hotel:         h,
			Country:       PlaceholderCountry,
			MinPrice:      PlaceholderMinPrice,
			PricePerNight: PlaceholderNightlyPrice,
			Rooms:         s.store.ListRooms(h.ID),
		})
	}
	return out
}

func (s *QueryService) HotelReviews(hotelID int) []domain.Review {
	return s.store.ListReviews(hotelID)
}

// UserBookings returns the user's bookings with display enrichment. Bookings
// may reference catalog ids that do not exist; those get the Unknown labels.
func (s *QueryService) UserBookings(userID int) []BookingView {
	bookings := s.store.ListBookings(userID)
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		hotelName := UnknownHotelName
		if h, ok := s.store.FindHotel(b.HotelID); ok {
			hotelName = h.Name
		}
		roomType := UnknownRoomType
		if r, ok := s.store.FindRoom(b.RoomID); ok {
			roomType = r.Type
		}
		out = append(out, BookingView{
			Booking:      b,
			HotelName:    hotelName,
			RoomType:     roomType,
			BookingID:    BookingCode(b.ID),
			CheckinDate:  b.CheckIn,
			CheckoutDate: b.CheckOut,
			BookingDate:  b.CreatedAt,
		})
	}
	return out
}
