package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingDataKey               = "data"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingStudioIDKey           = "studio_id"
	LoggingArtistIDKey           = "artist_id"
	LoggingWindowIDKey           = "window_id"
	LoggingBookingIDKey          = "booking_id"
	LoggingBookingStatusKey      = "booking_status"
	LoggingDateKey               = "date"
	LoggingYearKey               = "year"
	LoggingMonthKey              = "month"
	LoggingWindowCountKey        = "window_count"
	LoggingBookingCountKey       = "booking_count"
	LoggingResponseCountKey      = "response_count"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingEventKey              = "event"
)
