package reminders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

type ReminderAddCmd struct {
	Title      string `arg:"" help:"Reminder title."`
	Date       string `short:"d" help:"Anchor date (YYYY-MM-DD). Defaults to today."`
	Time       string `short:"t" help:"Time of day (HH:MM)." default:"09:00"`
	Repeat     string `short:"r" help:"Repeat phrase, e.g. 'every weekday' or 'first friday of the month'."`
	Every      string `help:"Recurrence type (none|daily|weekly|monthly|yearly|custom_days|nth_weekday|specific_days)." default:"none"`
	Interval   int    `short:"i" help:"Interval in days for daily or custom_days recurrence." default:"1"`
	Weekdays   string `short:"w" help:"Comma-separated weekdays for weekly or specific_days recurrence."`
	MonthDay   int    `help:"Day of month (1-31) for monthly recurrence. Defaults to the anchor day."`
	Nth        int    `help:"Occurrence within the month for nth_weekday recurrence (-1=last, 1-5)."`
	NthWeekday string `help:"Weekday for nth_weekday recurrence (e.g. 'friday')."`
	End        string `help:"Last date (YYYY-MM-DD) on which the reminder may occur."`
	Notes      string `short:"n" help:"Free-form notes."`
}

func (c *ReminderAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	if c.End != "" && !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date format (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *ReminderAddCmd) buildRule() (recurrence.Rule, error) {
	if c.Repeat != "" {
		rule, ok := recurrence.Parse(c.Repeat)
		if !ok {
			return recurrence.Rule{}, fmt.Errorf("could not understand repeat phrase %q", c.Repeat)
		}
		return rule, nil
	}

	switch c.Every {
	case "none", "":
		return recurrence.None(), nil
	case "daily":
		return recurrence.Daily(c.Interval), nil
	case "custom_days":
		return recurrence.EveryNDays(c.Interval), nil
	case "weekly", "specific_days":
		var days []time.Weekday
		if c.Weekdays != "" {
			parsed, err := cli.ParseWeekdays(c.Weekdays)
			if err != nil {
				return recurrence.Rule{}, err
			}
			days = parsed
		}
		if c.Every == "weekly" {
			return recurrence.Weekly(days...), nil
		}
		return recurrence.OnDays(days...), nil
	case "monthly":
		return recurrence.Monthly(c.MonthDay), nil
	case "yearly":
		return recurrence.Yearly(), nil
	case "nth_weekday":
		if c.NthWeekday == "" {
			return recurrence.Rule{}, fmt.Errorf("--nth-weekday must be specified for nth_weekday recurrence")
		}
		wd, err := cli.ParseWeekday(c.NthWeekday)
		if err != nil {
			return recurrence.Rule{}, err
		}
		return recurrence.NthWeekdayOf(c.Nth, wd), nil
	default:
		return recurrence.Rule{}, fmt.Errorf("invalid recurrence type: %s", c.Every)
	}
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	date := c.Date
	if date == "" {
		date, err = utils.GetTodayFromSettings(settings)
		if err != nil {
			return err
		}
	}

	rule, err := c.buildRule()
	if err != nil {
		return err
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	anchor, err := utils.CombineDateAndTime(date, c.Time, loc)
	if err != nil {
		return err
	}
	rule = cli.ResolveRule(rule, anchor)
	if c.End != "" {
		rule = rule.WithEndDate(c.End)
	}

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Date:      date,
		Time:      c.Time,
		Rule:      rule,
		Notes:     c.Notes,
		Active:    true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := reminder.Validate(); err != nil {
		return fmt.Errorf("invalid reminder: %w", err)
	}

	if err := ctx.Store.AddReminder(reminder); err != nil {
		return err
	}

	fmt.Printf("Added reminder: %s (ID: %s)\n", c.Title, reminder.ID)
	fmt.Printf("  Repeats: %s\n", recurrence.Describe(rule))

	if next, ok := recurrence.NextOccurrence(anchor, rule, time.Now().In(loc)); ok {
		fmt.Printf("  Next: %s\n", utils.FormatInstant(next))
	} else if !rule.IsNone() {
		fmt.Println("  Next: no upcoming occurrences")
	} else if anchor.After(time.Now().In(loc)) {
		fmt.Printf("  Next: %s\n", utils.FormatInstant(anchor))
	}

	return nil
}
