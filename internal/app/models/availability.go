package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityWindow is a contiguous wall-clock interval on one calendar
// date. Date and clock bounds stay strings in the naive-local wire formats;
// nothing in the engine converts them across time zones. A window with
// IsAvailable=false is a published blackout.
//
// Windows for the same (StudioID, Date) must never overlap in
// [StartTime, EndTime). The postgres exclusion constraint is the final
// authority on that; see the availability repository.
type AvailabilityWindow struct {
	ID            string              `json:"id"`
	StudioID      string              `json:"studio_id"`
	Date          string              `json:"date"`       // YYYY-MM-DD
	StartTime     string              `json:"start_time"` // HH:MM
	EndTime       string              `json:"end_time"`   // HH:MM
	PriceOverride decimal.NullDecimal `json:"price_override"`
	IsAvailable   bool                `json:"is_available"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// EffectivePrice resolves the per-slot rate: the override when present,
// otherwise the studio's default hourly rate.
func (w AvailabilityWindow) EffectivePrice(hourlyRate decimal.Decimal) decimal.Decimal {
	if w.PriceOverride.Valid {
		return w.PriceOverride.Decimal
	}
	return hourlyRate
}

// Overlaps reports whether two windows on the same date intersect in
// [StartTime, EndTime). Callers guarantee both windows parse; malformed
// bounds are rejected earlier at the adapter boundary.
func (w AvailabilityWindow) Overlaps(other AvailabilityWindow) bool {
	if w.Date != other.Date {
		return false
	}
	aStart, aEnd := clockMinutes(w.StartTime), clockMinutes(w.EndTime)
	bStart, bEnd := clockMinutes(other.StartTime), clockMinutes(other.EndTime)
	return aStart < bEnd && bStart < aEnd
}

// Contains reports whether [startClock, endClock) lies inside the window.
func (w AvailabilityWindow) Contains(startClock, endClock string) bool {
	return clockMinutes(w.StartTime) <= clockMinutes(startClock) &&
		clockMinutes(endClock) <= clockMinutes(w.EndTime)
}

func clockMinutes(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
