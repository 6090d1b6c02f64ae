package constvars

const (
	SuccessMonthGridRetrieved    = "Successfully built month grid"
	SuccessAvailabilityRetrieved = "Successfully retrieved availability"
	SuccessDateSelected          = "Successfully selected date for editing"
	SuccessWindowStaged          = "Successfully staged availability window"
	SuccessWindowCommitted       = "Successfully committed availability window"
	SuccessWindowRemoved         = "Successfully removed availability window"
	SuccessBookingsRetrieved     = "Successfully retrieved bookings"
	SuccessBookingRequested      = "Successfully requested booking"
	SuccessBookingConfirmed      = "Successfully confirmed booking"
	SuccessBookingCancelled      = "Successfully cancelled booking"
	SuccessStudioRetrieved       = "Successfully retrieved studio"
)
