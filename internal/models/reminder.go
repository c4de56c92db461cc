package models

import (
	"fmt"
	"time"

	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/recurrence"
)

// Reminder is a scheduled item. Date and Time together form the anchor: the
// original instant the reminder was created for, which every computed
// occurrence derives its time-of-day from. The anchor never changes once
// the reminder exists; rescheduling creates a new reminder.
type Reminder struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Time      string          `json:"time"` // HH:MM
	Rule      recurrence.Rule `json:"rule"`
	Notes     string          `json:"notes,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at,omitempty"` // RFC3339
	DeletedAt *string         `json:"deleted_at,omitempty"` // RFC3339
}

// Validate checks the reminder at the construction boundary so downstream
// consumers (calculator, formatter, storage) can assume well-formed values.
func (r Reminder) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("reminder title cannot be empty")
	}
	anchorDate, err := time.Parse(constants.DateFormat, r.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", r.Date, err)
	}
	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM): %w", r.Time, err)
	}
	if err := r.Rule.Validate(); err != nil {
		return fmt.Errorf("invalid recurrence rule: %w", err)
	}
	if r.Rule.EndDate != "" {
		end, err := time.Parse(constants.DateFormat, r.Rule.EndDate)
		if err == nil && end.Before(anchorDate) {
			return fmt.Errorf("recurrence end date %s is before the reminder date %s", r.Rule.EndDate, r.Date)
		}
	}
	return nil
}

// Anchor combines the reminder's date and time-of-day into an instant in
// the given location.
func (r Reminder) Anchor(loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	clock, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		loc,
	), nil
}
