package validation

import (
	"fmt"
	"time"

	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTitle  ConflictType = "duplicate_title"
	ConflictInvalidDateTime ConflictType = "invalid_datetime"
	ConflictInvalidRule     ConflictType = "invalid_rule"
	ConflictEndBeforeAnchor ConflictType = "end_before_anchor"
	ConflictNoOccurrences   ConflictType = "no_occurrences"
)

// Conflict represents a detected problem in stored reminders
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Reminder titles involved
	ReminderIDs []string // IDs of reminders involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates stored reminders for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateReminders scans reminders for problems a user would want surfaced:
// duplicate titles, malformed anchors, rules that can never fire, and end
// dates that predate the reminder itself. Soft-deleted reminders are skipped.
func (v *Validator) ValidateReminders(reminders []models.Reminder) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	// Check for duplicate titles
	titleCount := make(map[string][]string)
	for _, rem := range reminders {
		if rem.DeletedAt != nil || rem.Title == "" {
			continue
		}
		titleCount[rem.Title] = append(titleCount[rem.Title], rem.ID)
	}
	for title, ids := range titleCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTitle,
				Description: fmt.Sprintf("Duplicate reminder title: %q (IDs: %v)", title, ids),
				Items:       []string{title},
				ReminderIDs: ids,
			})
		}
	}

	for _, rem := range reminders {
		if rem.DeletedAt != nil {
			continue
		}

		anchorDate, dateErr := time.Parse(constants.DateFormat, rem.Date)
		if dateErr != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Reminder %q has an invalid date: %s", rem.Title, rem.Date),
				Items:       []string{rem.Title},
				ReminderIDs: []string{rem.ID},
			})
		}
		if _, err := time.Parse(constants.TimeFormat, rem.Time); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Reminder %q has an invalid time: %s", rem.Title, rem.Time),
				Items:       []string{rem.Title},
				ReminderIDs: []string{rem.ID},
			})
		}

		if err := rem.Rule.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRule,
				Description: fmt.Sprintf("Reminder %q has an invalid recurrence rule: %v", rem.Title, err),
				Items:       []string{rem.Title},
				ReminderIDs: []string{rem.ID},
			})
			continue
		}

		// A repeating weekly rule with no days will never fire again.
		if (rem.Rule.Type == recurrence.TypeWeekly || rem.Rule.Type == recurrence.TypeSpecificDays) &&
			len(rem.Rule.Weekdays) == 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNoOccurrences,
				Description: fmt.Sprintf("Reminder %q repeats weekly but has no weekdays selected", rem.Title),
				Items:       []string{rem.Title},
				ReminderIDs: []string{rem.ID},
			})
		}

		if rem.Rule.EndDate != "" && dateErr == nil {
			end, err := time.Parse(constants.DateFormat, rem.Rule.EndDate)
			if err == nil && end.Before(anchorDate) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictEndBeforeAnchor,
					Description: fmt.Sprintf("Reminder %q ends (%s) before it starts (%s)",
						rem.Title, rem.Rule.EndDate, rem.Date),
					Items:       []string{rem.Title},
					ReminderIDs: []string{rem.ID},
				})
			}
		}
	}

	return result
}
