package memory

import "github.com/stayfront/mockstay/internal/domain"

// Seed catalog. Documented demo credentials: admin/admin123, user1/password.
func seed(s *Store) {
	s.users["admin"] = domain.User{
		ID: 1, Username: "admin", Password: "admin123", Role: domain.RoleAdmin,
		Email: "admin@hotel.com", FullName: "Administrator",
	}
	s.users["user1"] = domain.User{
		ID: 2, Username: "user1", Password: "password", Role: domain.RoleUser,
		Email: "user1@email.com", FullName: "John Doe",
	}

	s.hotels = []domain.Hotel{
		{
			ID: 1, Name: "Grand Hotel", City: "New York",
			Address:     "123 Main St, New York, NY",
			Description: "Luxury hotel in the heart of the city",
			Amenities:   "WiFi, Pool, Gym, Restaurant",
			Rating:      4.5, Image: "/images/hotel-placeholder.svg",
		},
		{
			ID: 2, Name: "Beach Resort", City: "Miami",
			Address:     "456 Ocean Ave, Miami, FL",
			Description: "Beautiful beachfront resort",
			Amenities:   "WiFi, Pool, Beach Access, Spa",
			Rating:      4.8, Image: "/images/hotel-placeholder.svg",
		},
		{
			ID: 3, Name: "Mountain Lodge", City: "Denver",
			Address:     "789 Mountain Rd, Denver, CO",
			Description: "Cozy lodge with mountain views",
			Amenities:   "WiFi, Fireplace, Hiking Trails",
			Rating:      4.2, Image: "/images/hotel-placeholder.svg",
		},
	}

	s.rooms = []domain.Room{
		// Grand Hotel
		{ID: 1, HotelID: 1, Type: "Standard Room", Price: 150.00, Available: true, Description: "Comfortable room with city view"},
		{ID: 2, HotelID: 1, Type: "Deluxe Room", Price: 200.00, Available: true, Description: "Spacious room with premium amenities"},
		{ID: 3, HotelID: 1, Type: "Executive Suite", Price: 300.00, Available: true, Description: "Luxury suite with separate living area"},
		// Beach Resort
		{ID: 4, HotelID: 2, Type: "Ocean View Room", Price: 250.00, Available: true, Description: "Beautiful ocean view from your room"},
		{ID: 5, HotelID: 2, Type: "Beachfront Suite", Price: 350.00, Available: true, Description: "Direct beach access with private balcony"},
		{ID: 6, HotelID: 2, Type: "Presidential Suite", Price: 500.00, Available: true, Description: "Ultimate luxury with panoramic ocean views"},
		// Mountain Lodge
		{ID: 7, HotelID: 3, Type: "Standard Cabin", Price: 120.00, Available: true, Description: "Cozy cabin with mountain views"},
		{ID: 8, HotelID: 3, Type: "Deluxe Cabin", Price: 180.00, Available: true, Description: "Spacious cabin with fireplace"},
		{ID: 9, HotelID: 3, Type: "Mountain Suite", Price: 250.00, Available: true, Description: "Premium suite with panoramic mountain views"},
	}

	s.reviews = []domain.Review{
		{ID: 1, HotelID: 1, UserID: 2, Rating: 5, Comment: "Excellent service!", Date: "2024-01-15"},
		{ID: 2, HotelID: 2, UserID: 2, Rating: 4, Comment: "Great location!", Date: "2024-01-10"},
	}
}
