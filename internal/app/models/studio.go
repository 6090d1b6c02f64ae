package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Studio is the bookable resource. Its owner publishes availability windows
// and accepts or declines booking requests.
type Studio struct {
	ID          string          `json:"id"`
	OwnerUserID string          `json:"owner_user_id"`
	Name        string          `json:"name"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
