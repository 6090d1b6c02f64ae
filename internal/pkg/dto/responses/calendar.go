package responses

type CalendarCell struct {
	DayNumber       int       `json:"day_number"`
	Date            string    `json:"date"`
	IsCurrentMonth  bool      `json:"is_current_month"`
	IsToday         bool      `json:"is_today"`
	HasAvailability bool      `json:"has_availability"`
	Bookings        []Booking `json:"bookings,omitempty"`
	MoreBookings    int       `json:"more_bookings,omitempty"`
}

type MonthGrid struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}
