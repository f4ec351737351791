package notify

import (
	"os"
	"runtime"
	"time"

	"steady/internal/constants"
)

// Notification is one scheduled local notification, owned by the platform's
// notification store rather than the app state. The Kind marker lets the
// scheduler enumerate and cancel its own notifications without disturbing
// anything else in the store.
type Notification struct {
	ID        string
	Kind      string
	TriggerAt time.Time
	Title     string
	Body      string
	DayCount  int
}

// Platform is the capability-gated wrapper around the host's
// local-notification primitives. Exactly one implementation is selected at
// startup: the real sqlite-backed platform, or the unsupported no-op.
type Platform interface {
	// Supported reports whether the host can register real scheduled
	// notifications. Cheap and side-effect-free.
	Supported() bool
	// Configure performs one-time setup (store, channel, presentation
	// policy). Idempotent; only the first call takes effect.
	Configure() error
	// EnsurePermission returns true immediately if permission is already
	// granted, otherwise requests it and returns the grant result.
	EnsurePermission() (bool, error)
	// CancelAllReminders enumerates the scheduled notifications and cancels
	// every one carrying the daily-reminder kind marker.
	CancelAllReminders() error
	// ScheduleAt submits one notification for delivery at trigger, tagged
	// with the reminder kind and day count. Returns the assigned id.
	ScheduleAt(trigger time.Time, title, body string, dayCount int) (string, error)
	// Pending returns the undelivered daily-reminder notifications.
	Pending() ([]Notification, error)
}

var userConfigDirFunc = os.UserConfigDir

// Detect probes the host once and returns the matching platform
// implementation. Scheduled notifications are unsupported on wasm targets,
// when explicitly disabled via environment, and when no per-user config
// directory can be resolved (sandboxed runtimes).
func Detect() Platform {
	if runtime.GOOS == "js" || runtime.GOOS == "wasip1" {
		return Unsupported{}
	}
	if os.Getenv(constants.DisableNotificationsEnv) != "" {
		return Unsupported{}
	}
	configDir, err := userConfigDirFunc()
	if err != nil || configDir == "" {
		return Unsupported{}
	}
	return NewLocalPlatform(configDir)
}
