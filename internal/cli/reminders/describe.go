package reminders

import (
	"fmt"
	"time"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

type ReminderDescribeCmd struct {
	ID string `arg:"" help:"Reminder ID (or unique prefix)."`
}

func (c *ReminderDescribeCmd) Run(ctx *cli.Context) error {
	reminder, err := findReminder(ctx, c.ID)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	fmt.Printf("%s (ID: %s)\n", reminder.Title, reminder.ID)
	fmt.Printf("  Anchor:  %s %s\n", reminder.Date, reminder.Time)
	fmt.Printf("  Repeats: %s\n", recurrence.Describe(reminder.Rule))
	if reminder.Rule.EndDate != "" {
		if end, err := time.Parse(constants.DateFormat, reminder.Rule.EndDate); err == nil {
			fmt.Printf("  Until:   %s\n", end.Format(constants.DateFormat))
		}
	}
	if reminder.Notes != "" {
		fmt.Printf("  Notes:   %s\n", reminder.Notes)
	}
	if !reminder.Active {
		fmt.Println("  Status:  paused")
	}

	if at, ok := nextFor(reminder, loc, time.Now().In(loc)); ok {
		fmt.Printf("  Next:    %s\n", utils.FormatInstant(at))
	} else {
		fmt.Println("  Next:    no upcoming occurrences")
	}
	return nil
}
