package requests

type SelectEditorDate struct {
	Date        string `json:"date" validate:"required,calendar_date"`
	StudioID    string
	SessionData string
}

type StageAvailability struct {
	StartTime     string  `json:"start_time" validate:"required,clock"`
	EndTime       string  `json:"end_time" validate:"required,clock"`
	PriceOverride *string `json:"price_override,omitempty" validate:"omitempty,money"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
	StudioID      string
	SessionData   string
}

type CommitAvailability struct {
	StudioID    string
	SessionData string
}

type RemoveStagedWindow struct {
	StagedIndex int
	StudioID    string
	SessionData string
}

type GetEditorState struct {
	StudioID    string
	SessionData string
}

type RemoveAvailability struct {
	StudioID    string
	WindowID    string
	SessionData string
}

type GetAvailabilityForDate struct {
	StudioID string
	Date     string
}
