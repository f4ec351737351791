package cli

import (
	"fmt"
	"time"

	"steady/internal/backup"
	"steady/internal/constants"
	"steady/internal/logger"
	"steady/internal/reminder"
	"steady/internal/storage"
	"steady/internal/timeutil"
)

type Context struct {
	Store    storage.Provider
	Reminder *reminder.Service
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// SyncReminders invokes the reminder scheduler with the full current app
// state and reconciles the persisted enabled flag against the result, so the
// stored toggle always reflects the actually-achieved scheduling state. It
// returns the scheduler's boolean outcome.
func (c *Context) SyncReminders() (bool, error) {
	state, err := c.Store.GetState()
	if err != nil {
		return false, err
	}

	ok := c.Reminder.Sync(reminder.Params{
		Enabled:     state.Settings.ReminderEnabled(),
		CleanStart:  state.CleanStart,
		DisplayName: state.DisplayName,
		Hour:        state.Settings.DailyReminderHour,
		Minute:      state.Settings.DailyReminderMinute,
	})

	if !ok && state.Settings.ReminderEnabled() {
		settings := state.Settings
		settings.SetReminderEnabled(false)
		if err := c.Store.SaveSettings(settings); err != nil {
			return false, fmt.Errorf("failed to disable reminders after scheduling failure: %w", err)
		}
		logger.Warn("Daily reminder sync failed, reminders disabled")
	}

	return ok, nil
}

// ParseCleanStartInput accepts a clean-start value as either a date
// (YYYY-MM-DD, anchored at local midnight) or a full RFC3339 timestamp, and
// returns the canonical RFC3339 form.
func ParseCleanStartInput(value string) (string, error) {
	if value == "" {
		return time.Now().Format(time.RFC3339), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(time.RFC3339), nil
	}
	if t, err := time.ParseInLocation(constants.DateFormat, value, time.Local); err == nil {
		return t.Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("invalid clean-start value %q (expected YYYY-MM-DD or RFC3339)", value)
}

// FormatBreakdown renders an elapsed-time breakdown as a short human line.
func FormatBreakdown(b timeutil.Breakdown) string {
	return fmt.Sprintf("%d days (%d weeks, %d days) · %d hours · ~%d months",
		b.TotalDays, b.Weeks, b.RemainingDays, b.TotalHours, b.Months)
}

// MoodLabel maps a 1-5 mood rating to its display label.
func MoodLabel(mood int) string {
	switch mood {
	case 1:
		return "struggling"
	case 2:
		return "shaky"
	case 3:
		return "okay"
	case 4:
		return "good"
	case 5:
		return "strong"
	default:
		return "unknown"
	}
}
