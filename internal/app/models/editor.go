package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
)

// StagedWindow is one entry in the editor's staging list. Entries loaded
// from the store carry WindowID and Persisted=true; entries staged locally
// stay Persisted=false until a commit round-trips them through the store.
type StagedWindow struct {
	WindowID      string              `json:"windowId,omitempty"`
	Date          string              `json:"date"`
	StartTime     string              `json:"startTime"`
	EndTime       string              `json:"endTime"`
	PriceOverride decimal.NullDecimal `json:"priceOverride"`
	IsAvailable   bool                `json:"isAvailable"`
	Persisted     bool                `json:"persisted"`
}

// AvailabilityEditor is the per-(session, studio) editing state machine.
// It is serialized to Redis between requests, so every method mutates the
// receiver and the caller persists the result.
//
// States: Idle (no date selected), DateSelected (staging list mirrors the
// selected date), Committing (one create in flight). Month navigation never
// touches this state.
type AvailabilityEditor struct {
	SessionID    string         `json:"sessionId"`
	StudioID     string         `json:"studioId"`
	State        string         `json:"state"`
	SelectedDate string         `json:"selectedDate,omitempty"`
	Staged       []StagedWindow `json:"staged"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func NewAvailabilityEditor(sessionID, studioID string) *AvailabilityEditor {
	return &AvailabilityEditor{
		SessionID: sessionID,
		StudioID:  studioID,
		State:     constvars.EditorStateIdle,
		Staged:    []StagedWindow{},
	}
}

// SelectDate moves the editor to DateSelected and replaces the staging list
// with the date's persisted windows, discarding any prior edits.
func (e *AvailabilityEditor) SelectDate(date string, windows []AvailabilityWindow) {
	e.State = constvars.EditorStateDateSelected
	e.SelectedDate = date
	e.Staged = stagedFromWindows(windows)
}

// Stage appends a not-yet-persisted entry for the selected date.
func (e *AvailabilityEditor) Stage(startTime, endTime string, priceOverride decimal.NullDecimal, isAvailable bool) {
	e.Staged = append(e.Staged, StagedWindow{
		Date:          e.SelectedDate,
		StartTime:     startTime,
		EndTime:       endTime,
		PriceOverride: priceOverride,
		IsAvailable:   isAvailable,
	})
}

// FirstPending returns the index of the oldest staged entry that has not
// been committed yet, or -1 when everything in the list is persisted.
func (e *AvailabilityEditor) FirstPending() int {
	for i, entry := range e.Staged {
		if !entry.Persisted {
			return i
		}
	}
	return -1
}

// Reconcile replaces the staging list with store truth for the selected
// date. Called after every commit, success or failure, so staging never
// drifts from what the store actually holds.
func (e *AvailabilityEditor) Reconcile(windows []AvailabilityWindow) {
	e.State = constvars.EditorStateDateSelected
	e.Staged = stagedFromWindows(windows)
}

// RemoveAt drops the entry at index from the staging list. Persisted
// entries must only be removed after the store confirmed the deletion.
func (e *AvailabilityEditor) RemoveAt(index int) {
	e.Staged = append(e.Staged[:index], e.Staged[index+1:]...)
}

// HasDateSelected reports whether staging operations are allowed.
func (e *AvailabilityEditor) HasDateSelected() bool {
	return e.State == constvars.EditorStateDateSelected && e.SelectedDate != ""
}

func stagedFromWindows(windows []AvailabilityWindow) []StagedWindow {
	staged := make([]StagedWindow, 0, len(windows))
	for _, w := range windows {
		staged = append(staged, StagedWindow{
			WindowID:      w.ID,
			Date:          w.Date,
			StartTime:     w.StartTime,
			EndTime:       w.EndTime,
			PriceOverride: w.PriceOverride,
			IsAvailable:   w.IsAvailable,
			Persisted:     true,
		})
	}
	return staged
}

// Window converts a staged entry back into the model the store adapter
// persists.
func (s StagedWindow) Window(studioID string) *AvailabilityWindow {
	return &AvailabilityWindow{
		ID:            s.WindowID,
		StudioID:      studioID,
		Date:          s.Date,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		PriceOverride: s.PriceOverride,
		IsAvailable:   s.IsAvailable,
	}
}
