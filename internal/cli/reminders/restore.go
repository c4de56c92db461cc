package reminders

import (
	"fmt"

	"github.com/remindapp/remind/internal/cli"
)

type ReminderRestoreCmd struct {
	ID string `arg:"" help:"Reminder ID."`
}

func (c *ReminderRestoreCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.GetAllRemindersIncludingDeleted()
	if err != nil {
		return err
	}

	// Prefix matching against deleted reminders only
	id := c.ID
	var matches []string
	for _, r := range all {
		if r.DeletedAt == nil {
			continue
		}
		if r.ID == id {
			matches = []string{r.ID}
			break
		}
		if len(r.ID) >= len(id) && r.ID[:len(id)] == id {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("no deleted reminder matches %s", id)
	case 1:
		// fall through
	default:
		return fmt.Errorf("reminder ID %s is ambiguous (%d matches)", id, len(matches))
	}

	if err := ctx.Store.RestoreReminder(matches[0]); err != nil {
		return err
	}

	fmt.Printf("Restored reminder %s\n", shortID(matches[0]))
	return nil
}
