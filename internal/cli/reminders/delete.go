package reminders

import (
	"fmt"

	"github.com/remindapp/remind/internal/cli"
)

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder ID."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	reminder, err := findReminder(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteReminder(reminder.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted reminder: %s\n", reminder.Title)
	fmt.Println("  Use 'remind restore' to bring it back.")
	return nil
}
