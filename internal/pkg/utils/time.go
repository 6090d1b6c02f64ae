package utils

import (
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
)

// All scheduling data is naive local time: calendar dates, wall clocks and
// datetimes are parsed in time.Local and never converted between zones.

func ParseCalendarDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.TimeFormatCalendarDate, value, time.Local)
}

func ParseLocalDatetime(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.TimeFormatLocalDatetime, value, time.Local)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(constvars.TimeFormatCalendarDate)
}

func FormatLocalDatetime(t time.Time) string {
	return t.Format(constvars.TimeFormatLocalDatetime)
}

func FormatClock(t time.Time) string {
	return t.Format(constvars.TimeFormatClock)
}

// LocalWallClock reinterprets t's wall-clock fields in time.Local. Values
// scanned from timestamp-without-zone columns arrive flagged UTC; rebasing
// keeps comparisons against time.Now() on wall-clock terms.
func LocalWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}

// IsClockOrdered reports whether start is strictly before end, both HH:MM.
func IsClockOrdered(startClock, endClock string) bool {
	start, err := time.Parse(constvars.TimeFormatClock, startClock)
	if err != nil {
		return false
	}
	end, err := time.Parse(constvars.TimeFormatClock, endClock)
	if err != nil {
		return false
	}
	return start.Before(end)
}
