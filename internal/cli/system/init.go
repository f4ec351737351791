package system

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"steady/internal/cli"
	"steady/internal/constants"
	"steady/internal/models"
	"steady/internal/timeutil"
)

type InitCmd struct {
	Force bool   `help:"Force reset by deleting existing state before initialization."`
	Name  string `help:"Display name used to personalize reminders."`
	Start string `help:"Clean-start instant (YYYY-MM-DD or RFC3339). Defaults to now."`
	Quiet bool   `help:"Skip the interactive onboarding form." short:"q"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		statePath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(statePath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(statePath); err != nil {
				return fmt.Errorf("failed to delete existing state: %w", err)
			}
			fmt.Printf("Deleted existing state at: %s\n", statePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing state: %w", err)
		}
	}

	enableReminder := ctx.Reminder.Supported()
	reminderTime := fmt.Sprintf("%02d:%02d", constants.DefaultReminderHour, constants.DefaultReminderMinute)

	if !c.Quiet {
		groups := []*huh.Group{
			huh.NewGroup(
				huh.NewInput().
					Title("What should we call you? (optional)").
					Value(&c.Name),
				huh.NewInput().
					Title("When did your clean start begin? (YYYY-MM-DD, empty = now)").
					Value(&c.Start).
					Validate(func(s string) error {
						_, err := cli.ParseCleanStartInput(s)
						return err
					}),
			),
		}
		if ctx.Reminder.Supported() {
			groups = append(groups, huh.NewGroup(
				huh.NewConfirm().
					Title("Send a gentle daily reminder?").
					Value(&enableReminder),
				huh.NewInput().
					Title("What time? (HH:MM)").
					Value(&reminderTime).
					Validate(func(s string) error {
						_, err := timeutil.ParseWallClock(s)
						return err
					}),
			))
		}
		if err := huh.NewForm(groups...).Run(); err != nil {
			return err
		}
	}

	cleanStart, err := cli.ParseCleanStartInput(c.Start)
	if err != nil {
		return err
	}

	state := models.State{
		Version:     1,
		CleanStart:  cleanStart,
		DisplayName: c.Name,
	}
	if ctx.Reminder.Supported() {
		state.Settings.SetReminderEnabled(enableReminder)
		if t, err := timeutil.ParseWallClock(reminderTime); err == nil {
			state.Settings.SetReminderTime(t.Hour(), t.Minute())
		}
	}

	if err := ctx.Store.Init(state); err != nil {
		return err
	}
	fmt.Printf("Initialized steady storage at: %s\n", ctx.Store.GetConfigPath())

	if state.Settings.ReminderEnabled() {
		ok, err := ctx.SyncReminders()
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("Daily reminder scheduled for %s.\n", reminderTime)
		} else {
			fmt.Println("Daily reminders could not be scheduled and were turned off.")
			fmt.Println("Run 'steady settings --reminder' once the steady agent is available.")
		}
	}

	return nil
}
