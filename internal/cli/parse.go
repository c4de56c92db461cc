package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/utils"
)

// ParseCmd checks what a repeat phrase means without creating a reminder.
type ParseCmd struct {
	Phrase []string `arg:"" help:"Repeat phrase, e.g. 'every weekday' or 'first friday of the month'."`
	Count  int      `short:"c" help:"How many example occurrences to show." default:"5"`
}

func (c *ParseCmd) Run(ctx *Context) error {
	phrase := strings.Join(c.Phrase, " ")

	rule, ok := recurrence.Parse(phrase)
	if !ok {
		return fmt.Errorf("could not understand %q", phrase)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	rule = ResolveRule(rule, now)

	fmt.Printf("%q means: %s\n", phrase, recurrence.Describe(rule))

	occurrences := recurrence.Occurrences(now, rule, c.Count)
	if len(occurrences) > 0 {
		fmt.Println("Starting today, it would occur on:")
		for _, at := range occurrences {
			fmt.Printf("  %s\n", at.Format("Mon, 02 Jan 2006"))
		}
	}
	return nil
}
