package constvars

// CustomValidationErrorMessages maps validator tags to client wording.
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"oneof":            "must be one of: %s",
	"uuid":             "must be a valid identifier",
	"clock":            "must be a wall-clock time in HH:MM format",
	"calendar_date":    "must be a calendar date in YYYY-MM-DD format",
	"local_datetime":   "must be a local datetime in YYYY-MM-DDTHH:MM format",
	"participant_role": "must be either studio_owner or artist",
	"money":            "must be a non-negative decimal amount",
}

// TagsWithParams marks tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
