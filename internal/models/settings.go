package models

import "steady/internal/constants"

// Settings represents application-wide settings. Reminder fields are
// pointers so a missing value in the persisted JSON can be told apart from
// an explicit zero; read them through the accessor methods, which normalize
// missing and out-of-range values to the defaults instead of propagating
// them into scheduling.
type Settings struct {
	DailyReminderEnabled *bool `json:"daily_reminder_enabled,omitempty"` // whether daily reminders are active
	DailyReminderHour    *int  `json:"daily_reminder_hour,omitempty"`    // target wall-clock hour [0,23]
	DailyReminderMinute  *int  `json:"daily_reminder_minute,omitempty"`  // target wall-clock minute [0,59]
}

// ReminderEnabled reports whether daily reminders are enabled. Absent means
// disabled.
func (s Settings) ReminderEnabled() bool {
	return s.DailyReminderEnabled != nil && *s.DailyReminderEnabled
}

// ReminderHour returns the reminder hour clamped to [0,23], substituting the
// default for missing or invalid values.
func (s Settings) ReminderHour() int {
	if s.DailyReminderHour == nil || *s.DailyReminderHour < 0 || *s.DailyReminderHour > 23 {
		return constants.DefaultReminderHour
	}
	return *s.DailyReminderHour
}

// ReminderMinute returns the reminder minute clamped to [0,59], substituting
// the default for missing or invalid values.
func (s Settings) ReminderMinute() int {
	if s.DailyReminderMinute == nil || *s.DailyReminderMinute < 0 || *s.DailyReminderMinute > 59 {
		return constants.DefaultReminderMinute
	}
	return *s.DailyReminderMinute
}

// SetReminderEnabled sets the enabled flag explicitly.
func (s *Settings) SetReminderEnabled(enabled bool) {
	s.DailyReminderEnabled = &enabled
}

// SetReminderTime sets the reminder hour and minute explicitly.
func (s *Settings) SetReminderTime(hour, minute int) {
	s.DailyReminderHour = &hour
	s.DailyReminderMinute = &minute
}
