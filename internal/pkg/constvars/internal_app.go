package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
)

const (
	REQUEST_ID_PREFIX = "INKSPC_SVC_"
)

// Participant roles carried in session data and casbin policies.
const (
	RoleStudioOwner = "studio_owner"
	RoleArtist      = "artist"
)

// Redis key prefixes. Staging keys are per session+studio so two owner
// devices editing the same studio see the same list.
const (
	RedisKeyPrefixSession       = "session:"
	RedisKeyPrefixEditorStaging = "availability_editor:"
	RedisKeyPrefixDayLock       = "studio_day_lock:"
)

// Availability editor states.
const (
	EditorStateIdle         = "idle"
	EditorStateDateSelected = "date_selected"
	EditorStateCommitting   = "committing"
)

const (
	MongoCollectionBookingEvents = "booking_events"
)

// Change-event routing keys published after successful mutations.
const (
	EventBookingStatusChanged = "booking.status_changed"
	EventAvailabilityChanged  = "availability.changed"
)

// Calendar view policy: days render at most this many bookings inline,
// the rest collapse into a remainder count.
const (
	CalendarMaxBookingsPerCell = 2
)
