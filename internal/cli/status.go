package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"steady/internal/timeutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	affirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	state, err := ctx.Store.GetState()
	if err != nil {
		return err
	}

	now := time.Now()
	start := timeutil.ParseCleanStart(state.CleanStart)
	b := timeutil.Elapsed(start, now)

	headline := fmt.Sprintf("%d days clean", b.TotalDays)
	if b.TotalDays == 1 {
		headline = "1 day clean"
	}
	if state.DisplayName != "" {
		headline = fmt.Sprintf("%s — %s", state.DisplayName, headline)
	}

	fmt.Println(titleStyle.Render(headline))
	fmt.Printf("%s %d weeks, %d days\n", labelStyle.Render("Weeks:"), b.Weeks, b.RemainingDays)
	fmt.Printf("%s %d\n", labelStyle.Render("Hours:"), b.TotalHours)
	fmt.Printf("%s ~%d\n", labelStyle.Render("Months:"), b.Months)

	dayCount := timeutil.DayCount(start, now)
	fmt.Println()
	fmt.Println(affirmStyle.Render(ctx.Reminder.Affirmation(dayCount)))

	settings := state.Settings
	if settings.ReminderEnabled() {
		fmt.Printf("\n%s daily at %02d:%02d\n",
			labelStyle.Render("Reminder:"), settings.ReminderHour(), settings.ReminderMinute())
	} else if !ctx.Reminder.Supported() {
		fmt.Println()
		fmt.Println(noticeStyle.Render("Reminders are not available on this platform."))
	}

	return nil
}
