package constvars

// Client-facing messages: generic, never leak internals.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidTimeRange              = "The start time must be earlier than the end time"
	ErrClientAvailabilityConflict          = "This window overlaps availability that already exists for that date"
	ErrClientBookingConflict               = "That time is no longer available, please refresh and pick another slot"
	ErrClientOutsideAvailability           = "The requested time is outside the studio's published availability"
	ErrClientWindowNotFound                = "The availability window no longer exists"
	ErrClientBookingNotFound               = "The booking could not be found"
	ErrClientStudioNotFound                = "The studio could not be found"
	ErrClientArtistNotFound                = "The artist profile could not be found"
	ErrClientBookingTransition             = "The booking cannot change to that status"
	ErrClientCancelAfterStart              = "A booking can no longer be cancelled once it has started"
	ErrClientNoDateSelected                = "Select a date before editing availability"
	ErrClientEditorBusy                    = "Another availability change for this date is still in progress"
	ErrClientTooManyRequests               = "Too many requests, please slow down and try again"
)

// Developer messages: precise, logged and returned outside production.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevURLParamValidationFailed = "Failed to validate URL param: %s"
	ErrDevInvalidFormat            = "Invalid format for %s"
	ErrDevReadBody                 = "Failed to read request body"
	ErrDevCannotParseJSON          = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevCannotParseDate          = "Failed to parse calendar date"
	ErrDevCannotParseClock         = "Failed to parse wall-clock time"
	ErrDevCannotParseDatetime      = "Failed to parse local datetime"
	ErrDevServerDeadlineExceeded   = "Server deadline exceeded while processing request"
	ErrDevServerProcess            = "Unhandled server error while processing request"

	ErrDevAuthTokenMissing          = "Authorization token is missing from request"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevSessionNotFound           = "Session data not found in redis"
	ErrDevRoleDoesntMatch           = "Actor role does not permit this operation"
	ErrDevRBACEnforce               = "Casbin enforcement failed"
	ErrDevTooManyRequests           = "Client exceeded the mutation rate limit"

	ErrDevInvalidTimeRange      = "startTime must be strictly before endTime"
	ErrDevAvailabilityOverlap   = "Availability window overlaps an existing window for the same studio and date"
	ErrDevBookingOverlap        = "Booking interval overlaps a pending or confirmed booking for the same studio"
	ErrDevBookingOutsideWindow  = "Booking interval is not contained in any available window for that date"
	ErrDevWindowNotFound        = "Availability window does not exist"
	ErrDevBookingNotFound       = "Booking does not exist"
	ErrDevStudioNotFound        = "Studio does not exist"
	ErrDevArtistNotFound        = "Artist does not exist"
	ErrDevBookingTransition     = "Illegal booking status transition"
	ErrDevEditorNoDateSelected  = "Editor has no selected date; staging requires DateSelected state"
	ErrDevEditorLockNotAcquired = "Could not acquire the per-day editor lock"

	ErrDevDBFailedToFindData    = "Postgres: failed to find data"
	ErrDevDBFailedToInsertData  = "Postgres: failed to insert data"
	ErrDevDBFailedToUpdateData  = "Postgres: failed to update data"
	ErrDevDBFailedToDeleteData  = "Postgres: failed to delete data"
	ErrDevDBFailedToIterateData = "Postgres: failed to iterate dataset"

	ErrDevMongoFailedToInsertDocument   = "MongoDB: failed to insert document"
	ErrDevMongoFailedToFindDocument     = "MongoDB: failed to find document"
	ErrDevMongoFailedToIterateDocuments = "MongoDB: failed to iterate documents"

	ErrDevRedisGetData        = "Redis: failed to get data"
	ErrDevRedisGetNoData      = "Redis: no data found for key %s"
	ErrDevRedisSetData        = "Redis: failed to set data"
	ErrDevRedisDeleteData     = "Redis: failed to delete data"
	ErrDevRedisIncrementValue = "Redis: failed to increment value"
	ErrDevRedisExpire         = "Redis: failed to set key expiration"
	ErrDevRedisUnlock         = "Redis: failed to release lock"

	ErrDevRabbitMQPublish = "RabbitMQ: failed to publish message to queue %s"
)
