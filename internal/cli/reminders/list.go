package reminders

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/recurrence"
)

type ReminderListCmd struct {
	All bool `short:"a" help:"Include soft-deleted reminders."`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	var err error
	reminders, err := ctx.Store.GetAllReminders()
	if c.All {
		reminders, err = ctx.Store.GetAllRemindersIncludingDeleted()
	}
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders found. Add one with 'remind add'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tTIME\tREPEATS\tSTATUS")
	for _, r := range reminders {
		status := "active"
		if r.DeletedAt != nil {
			status = "deleted"
		} else if !r.Active {
			status = "paused"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.Title, r.Date, r.Time, recurrence.Describe(r.Rule), status)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
