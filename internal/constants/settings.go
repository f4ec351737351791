package constants

const (
	// Default Settings Values
	DefaultReminderHour   = 9
	DefaultReminderMinute = 0
)
