package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingActor identifies who drives a status transition. Completion is
// system-only; it fires when the end datetime passes, never from a request.
type BookingActor string

const (
	BookingActorArtist BookingActor = "artist"
	BookingActorOwner  BookingActor = "owner"
	BookingActorSystem BookingActor = "system"
)

// CanTransitionTo encodes the lifecycle table: pending → confirmed|cancelled,
// confirmed → cancelled|completed. Cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled || next == BookingStatusCompleted
	default:
		return false
	}
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// IsActive marks the statuses that occupy calendar time and block new
// bookings on the same interval.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// Booking is a ledger entry jointly referenced by a studio and an artist.
// Datetimes are naive local time (stored without zone). Bookings are never
// deleted: cancellation is a status write so history stays auditable.
type Booking struct {
	ID            string        `json:"id"`
	StudioID      string        `json:"studio_id"`
	ArtistID      string        `json:"artist_id"`
	StartDatetime time.Time     `json:"start_datetime"`
	EndDatetime   time.Time     `json:"end_datetime"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Resolved at query time from the studios/artists tables, never stored
	// on the booking row.
	StudioName string `json:"studio_name,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
}

// OverlapsInterval reports whether the booking intersects [start, end).
func (b Booking) OverlapsInterval(start, end time.Time) bool {
	return b.StartDatetime.Before(end) && start.Before(b.EndDatetime)
}
