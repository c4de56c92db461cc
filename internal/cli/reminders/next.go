package reminders

import (
	"fmt"
	"sort"
	"time"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

type ReminderNextCmd struct {
	ID string `arg:"" optional:"" help:"Reminder ID. Without it, shows the next occurrence across all reminders."`
}

type upcoming struct {
	reminder models.Reminder
	at       time.Time
}

func (c *ReminderNextCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	if c.ID != "" {
		reminder, err := findReminder(ctx, c.ID)
		if err != nil {
			return err
		}
		at, ok := nextFor(reminder, loc, now)
		if !ok {
			fmt.Printf("%s: no upcoming occurrences\n", reminder.Title)
			return nil
		}
		fmt.Printf("%s: %s\n", reminder.Title, utils.FormatInstant(at))
		return nil
	}

	all, err := ctx.Store.GetAllReminders()
	if err != nil {
		return err
	}

	var hits []upcoming
	for _, r := range all {
		if !r.Active {
			continue
		}
		if at, ok := nextFor(r, loc, now); ok {
			hits = append(hits, upcoming{reminder: r, at: at})
		}
	}

	if len(hits) == 0 {
		fmt.Println("No upcoming occurrences.")
		return nil
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].at.Before(hits[j].at) })
	fmt.Printf("%s: %s\n", hits[0].reminder.Title, utils.FormatInstant(hits[0].at))
	return nil
}

// nextFor computes the next occurrence of a reminder after now, treating a
// one-shot reminder whose anchor is still in the future as upcoming.
func nextFor(r models.Reminder, loc *time.Location, now time.Time) (time.Time, bool) {
	anchor, err := r.Anchor(loc)
	if err != nil {
		return time.Time{}, false
	}
	if r.Rule.IsNone() {
		if anchor.After(now) {
			return anchor, true
		}
		return time.Time{}, false
	}
	if anchor.After(now) {
		return anchor, true
	}
	return recurrence.NextOccurrence(anchor, r.Rule, now)
}

// findReminder resolves a full or prefix ID to a stored reminder.
func findReminder(ctx *cli.Context, id string) (models.Reminder, error) {
	if reminder, err := ctx.Store.GetReminder(id); err == nil {
		return reminder, nil
	}

	all, err := ctx.Store.GetAllReminders()
	if err != nil {
		return models.Reminder{}, err
	}

	var matches []models.Reminder
	for _, r := range all {
		if len(id) > 0 && len(r.ID) >= len(id) && r.ID[:len(id)] == id {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Reminder{}, fmt.Errorf("reminder %s not found", id)
	default:
		return models.Reminder{}, fmt.Errorf("reminder ID %s is ambiguous (%d matches)", id, len(matches))
	}
}
