package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"steady/internal/constants"
	"steady/internal/models"
	"steady/internal/timeutil"
)

type ResetCmd struct {
	Start string `help:"New clean-start instant (YYYY-MM-DD or RFC3339). Defaults to now."`
	Yes   bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}

	now := time.Now()
	previous := timeutil.ParseCleanStart(state.CleanStart)
	elapsed := timeutil.Elapsed(previous, now)

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Reset your clean start? The current run (%d days) will be archived.", elapsed.TotalDays)).
			Affirmative("Reset").
			Negative("Keep going").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	newStart, err := ParseCleanStartInput(c.Start)
	if err != nil {
		return err
	}

	endedRun := models.Run{
		CleanStart: state.CleanStart,
		EndedAt:    now,
		TotalDays:  elapsed.TotalDays,
	}
	if err := ctx.Store.Reset(newStart, endedRun); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}

	fmt.Println("Clean start reset. Be gentle with yourself.")

	// Future reminder bodies must count from the new start
	if state.Settings.ReminderEnabled() {
		if ok, err := ctx.SyncReminders(); err != nil {
			return err
		} else if !ok {
			fmt.Println("Daily reminders could not be rescheduled and were turned off.")
		}
	}
	return nil
}

type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *Context) error {
	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}

	if len(state.History) == 0 {
		fmt.Println("No previous runs.")
		return nil
	}

	fmt.Printf("Previous runs (%d):\n", len(state.History))
	for _, run := range state.History {
		started := timeutil.ParseCleanStart(run.CleanStart)
		fmt.Printf("  %s to %s  (%d days)\n",
			started.Format(constants.DateFormat), run.EndedAt.Format(constants.DateFormat), run.TotalDays)
	}
	return nil
}
