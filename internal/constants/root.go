package constants

const (
	AppName = "steady"
	Version = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "steady-"
	BackupFileSuffix = ".json"

	// Notification constants
	ReminderKind           = "daily-reminder"
	ReminderChannelID      = "daily-reminder"
	ReminderChannelName    = "Daily Reminders"
	ReminderWindowDays     = 365
	NotificationDBName     = "notifications.db"
	AgentLockfileName      = "steady-agent.lock"
	AgentSecretKeyringUser = "agent-webhook"
	AgentExecutablePrefix  = "steady-agent"
	NotificationDurationMs = 5000

	// DisableNotificationsEnv disables the real notification platform when set.
	// Used by sandboxed and headless environments that cannot deliver.
	DisableNotificationsEnv = "STEADY_NO_NOTIFY"
)
