package responses

import "github.com/shopspring/decimal"

type AvailabilityWindow struct {
	WindowID       string              `json:"window_id"`
	StudioID       string              `json:"studio_id"`
	Date           string              `json:"date"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	PriceOverride  decimal.NullDecimal `json:"price_override"`
	EffectivePrice decimal.Decimal     `json:"effective_price"`
	IsAvailable    bool                `json:"is_available"`
}

type DateAvailability struct {
	StudioID string               `json:"studio_id"`
	Date     string               `json:"date"`
	Windows  []AvailabilityWindow `json:"windows"`
}

type StagedWindow struct {
	WindowID      string              `json:"window_id,omitempty"`
	Date          string              `json:"date"`
	StartTime     string              `json:"start_time"`
	EndTime       string              `json:"end_time"`
	PriceOverride decimal.NullDecimal `json:"price_override"`
	IsAvailable   bool                `json:"is_available"`
	Persisted     bool                `json:"persisted"`
}

type EditorState struct {
	StudioID     string         `json:"studio_id"`
	State        string         `json:"state"`
	SelectedDate string         `json:"selected_date,omitempty"`
	Staged       []StagedWindow `json:"staged"`
}
