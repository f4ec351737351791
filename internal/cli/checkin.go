package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"steady/internal/constants"
	"steady/internal/models"
	"steady/internal/timeutil"
)

type CheckinCmd struct {
	Mood int    `help:"Mood rating from 1 (struggling) to 5 (strong)." short:"m"`
	Note string `help:"Optional note for today's check-in." short:"n"`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	// Interactive form when no rating was given on the command line
	if c.Mood == 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title("How are you feeling today?").
					Options(
						huh.NewOption("Strong", 5),
						huh.NewOption("Good", 4),
						huh.NewOption("Okay", 3),
						huh.NewOption("Shaky", 2),
						huh.NewOption("Struggling", 1),
					).
					Value(&c.Mood),
				huh.NewText().
					Title("Anything you want to note? (optional)").
					Value(&c.Note),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	now := time.Now()
	day := timeutil.LocalDayNumber(now)

	existing, found, err := ctx.Store.GetCheckInForDay(day)
	if err != nil {
		return err
	}

	checkIn := models.CheckIn{
		ID:        uuid.NewString(),
		Day:       day,
		Mood:      c.Mood,
		Note:      c.Note,
		CreatedAt: now,
	}
	if err := ctx.Store.AddCheckIn(checkIn); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	if found {
		fmt.Printf("Updated today's check-in (was %s): feeling %s.\n", MoodLabel(existing.Mood), MoodLabel(c.Mood))
	} else {
		fmt.Printf("Checked in: feeling %s.\n", MoodLabel(c.Mood))
	}
	return nil
}

type CheckinLogCmd struct {
	Last int `help:"Show only the most recent N check-ins." default:"14"`
}

func (c *CheckinLogCmd) Run(ctx *Context) error {
	checkIns, err := ctx.Store.GetCheckIns()
	if err != nil {
		return err
	}

	if len(checkIns) == 0 {
		fmt.Println("No check-ins recorded yet.")
		return nil
	}

	if c.Last > 0 && len(checkIns) > c.Last {
		checkIns = checkIns[len(checkIns)-c.Last:]
	}

	for _, entry := range checkIns {
		line := fmt.Sprintf("  %s  %-11s", entry.CreatedAt.Format(constants.DateFormat), MoodLabel(entry.Mood))
		if entry.Note != "" {
			line += "  " + entry.Note
		}
		fmt.Println(line)
	}
	return nil
}
