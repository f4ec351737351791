package settings

import (
	"fmt"

	"steady/internal/cli"
	"steady/internal/constants"
	"steady/internal/timeutil"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Name         *string `help:"Display name used to personalize reminders."`
	Reminder     *bool   `help:"Enable or disable the daily reminder."`
	ReminderTime *string `help:"Daily reminder time (HH:MM)."`
	CleanStart   *string `help:"Change the clean-start instant (YYYY-MM-DD or RFC3339)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}
	settings := state.Settings

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Display Name:   %s\n", valueOrUnset(state.DisplayName))
		fmt.Printf("  Clean Start:    %s\n", valueOrUnset(state.CleanStart))
		fmt.Println("\nReminder Settings:")
		fmt.Printf("  Daily Reminder: %v\n", settings.ReminderEnabled())
		fmt.Printf("  Reminder Time:  %02d:%02d\n", settings.ReminderHour(), settings.ReminderMinute())
		if !ctx.Reminder.Supported() {
			fmt.Println("\n  Note: scheduled reminders are not available on this platform.")
		}
		return nil
	}

	updated := false
	reminderAffected := false

	if c.Name != nil {
		if err := ctx.Store.SetDisplayName(*c.Name); err != nil {
			return fmt.Errorf("failed to save display name: %w", err)
		}
		updated = true
		// Future notification bodies carry the name
		reminderAffected = true
	}

	if c.CleanStart != nil {
		iso, err := cli.ParseCleanStartInput(*c.CleanStart)
		if err != nil {
			return err
		}
		if err := ctx.Store.SetCleanStart(iso); err != nil {
			return fmt.Errorf("failed to save clean start: %w", err)
		}
		updated = true
		reminderAffected = true
	}

	if c.ReminderTime != nil {
		t, err := timeutil.ParseWallClock(*c.ReminderTime)
		if err != nil {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", *c.ReminderTime)
		}
		settings.SetReminderTime(t.Hour(), t.Minute())
		updated = true
		reminderAffected = true
	}

	if c.Reminder != nil {
		if *c.Reminder && !ctx.Reminder.Supported() {
			return fmt.Errorf("scheduled reminders are not supported on this platform")
		}
		settings.SetReminderEnabled(*c.Reminder)
		updated = true
		reminderAffected = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")

	if reminderAffected {
		ok, err := ctx.SyncReminders()
		if err != nil {
			return err
		}
		if !ok && settings.ReminderEnabled() {
			fmt.Println("Daily reminders could not be scheduled and were turned off.")
			fmt.Println("Check that the steady agent is running and notifications are allowed.")
		} else if settings.ReminderEnabled() {
			fmt.Printf("Daily reminder scheduled for %02d:%02d (%d days ahead).\n",
				settings.ReminderHour(), settings.ReminderMinute(), constants.ReminderWindowDays)
		}
	}

	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
