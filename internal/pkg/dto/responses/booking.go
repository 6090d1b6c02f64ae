package responses

type Booking struct {
	BookingID     string `json:"booking_id"`
	StudioID      string `json:"studio_id"`
	StudioName    string `json:"studio_name,omitempty"`
	ArtistID      string `json:"artist_id"`
	ArtistName    string `json:"artist_name,omitempty"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
	Status        string `json:"status"`
}

type BookingDay struct {
	Date         string    `json:"date"`
	Bookings     []Booking `json:"bookings"`
	MoreBookings int       `json:"more_bookings,omitempty"`
}

type BookingMonth struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Days  []BookingDay `json:"days"`
}

type DayBookings struct {
	Date     string    `json:"date"`
	Bookings []Booking `json:"bookings"`
}
