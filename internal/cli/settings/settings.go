package settings

import (
	"fmt"

	"github.com/remindapp/remind/internal/cli"
	"github.com/remindapp/remind/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone name, or 'Local' for the system timezone."`
	PreviewCount         *int    `help:"How many upcoming occurrences previews show."`
	LeadTimeMin          *int    `help:"Minutes before an occurrence to send a notification."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Preview Count:         %d\n", settings.PreviewCount)
		fmt.Printf("  Lead Time:             %d min\n", settings.LeadTimeMin)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.PreviewCount != nil {
		if *c.PreviewCount < 1 {
			return fmt.Errorf("preview count must be at least 1")
		}
		settings.PreviewCount = *c.PreviewCount
		updated = true
	}
	if c.LeadTimeMin != nil {
		if *c.LeadTimeMin < 0 {
			return fmt.Errorf("lead time cannot be negative")
		}
		settings.LeadTimeMin = *c.LeadTimeMin
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}

	if !updated {
		fmt.Println("No settings changed. Use --list to see current settings.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings updated.")
	return nil
}
