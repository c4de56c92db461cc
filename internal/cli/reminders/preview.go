package reminders

import (
	"fmt"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

type ReminderPreviewCmd struct {
	ID    string `arg:"" help:"Reminder ID."`
	Count int    `short:"c" help:"How many occurrences to show. Defaults to the preview_count setting."`
}

func (c *ReminderPreviewCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	count := c.Count
	if count <= 0 {
		count = settings.PreviewCount
	}

	reminder, err := findReminder(ctx, c.ID)
	if err != nil {
		return err
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	anchor, err := reminder.Anchor(loc)
	if err != nil {
		return err
	}

	occurrences := recurrence.Occurrences(anchor, reminder.Rule, count)
	fmt.Printf("%s (%s)\n", reminder.Title, recurrence.Describe(reminder.Rule))
	if len(occurrences) == 0 {
		fmt.Println("  No occurrences.")
		return nil
	}
	for _, at := range occurrences {
		fmt.Printf("  %s\n", utils.FormatInstant(at))
	}
	if !reminder.Rule.IsNone() && len(occurrences) == count {
		fmt.Println("  ...")
	}
	return nil
}
