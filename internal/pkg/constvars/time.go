package constvars

// Wire formats. All values are naive local time: calendar dates carry no
// zone, clocks are wall time, datetimes are local without offset.
const (
	TimeFormatCalendarDate  = "2006-01-02"
	TimeFormatClock         = "15:04"
	TimeFormatLocalDatetime = "2006-01-02T15:04"
)
