package responses

import "github.com/shopspring/decimal"

type Studio struct {
	StudioID   string          `json:"studio_id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}
