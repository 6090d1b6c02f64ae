package models

import "time"

// BookingEvent is one entry of the append-only status audit trail kept in
// MongoDB. For the initial request From is empty and To is pending.
type BookingEvent struct {
	BookingID  string       `json:"booking_id" bson:"bookingId"`
	StudioID   string       `json:"studio_id" bson:"studioId"`
	ArtistID   string       `json:"artist_id" bson:"artistId"`
	FromStatus string       `json:"from_status" bson:"fromStatus"`
	ToStatus   string       `json:"to_status" bson:"toStatus"`
	Actor      BookingActor `json:"actor" bson:"actor"`
	OccurredAt time.Time    `json:"occurred_at" bson:"occurredAt"`
}
