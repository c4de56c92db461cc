package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetAllRemindersIncludingDeleted()
	if err != nil {
		return err
	}

	v := validation.New()
	result := v.ValidateReminders(reminders)

	fmt.Println(strings.TrimSuffix(result.FormatReport(), "\n"))
	if result.HasConflicts() {
		return errors.New("validation found conflicts")
	}
	return nil
}
