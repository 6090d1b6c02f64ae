package requests

type CreateBooking struct {
	StudioID      string `json:"studio_id" validate:"required,uuid"`
	StartDatetime string `json:"start_datetime" validate:"required,local_datetime"`
	EndDatetime   string `json:"end_datetime" validate:"required,local_datetime"`
	SessionData   string
}

type ConfirmBooking struct {
	BookingID   string
	SessionData string
}

type CancelBooking struct {
	BookingID   string
	SessionData string
}

type GetBookingsForMonth struct {
	Year        int
	Month       int
	SessionData string
}

type GetBookingsForDay struct {
	Date           string
	IncludeHistory bool
	SessionData    string
}
