package system

import (
	"fmt"
	"time"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/notifier"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

// NotifyCmd is meant to run once a minute from a scheduler. It hands off a
// notification for every reminder whose next occurrence is exactly the
// configured lead time away.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	reminders, err := ctx.Store.GetAllReminders()
	if err != nil {
		return err
	}

	now := time.Now().In(loc).Truncate(time.Minute)
	trigger := now.Add(time.Duration(settings.LeadTimeMin) * time.Minute)

	n := notifier.New()

	for _, r := range reminders {
		if !r.Active {
			continue
		}

		next, ok := nextOccurrence(r, loc, now)
		if !ok || !next.Truncate(time.Minute).Equal(trigger) {
			continue
		}

		var msg string
		if settings.LeadTimeMin == 0 {
			msg = fmt.Sprintf("Now: %s (%s)", r.Title, r.Time)
		} else {
			msg = fmt.Sprintf("Upcoming: %s in %d min (%s)", r.Title, settings.LeadTimeMin, r.Time)
		}

		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(msg); err != nil {
			// Keep checking other reminders
			fmt.Printf("Failed to send notification: %v\n", err)
		}
	}

	return nil
}

func nextOccurrence(r models.Reminder, loc *time.Location, now time.Time) (time.Time, bool) {
	anchor, err := r.Anchor(loc)
	if err != nil {
		return time.Time{}, false
	}
	if anchor.After(now) {
		return anchor, true
	}
	if r.Rule.IsNone() {
		return time.Time{}, false
	}
	return recurrence.NextOccurrence(anchor, r.Rule, now)
}
