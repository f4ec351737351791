package notify

import "time"

// Unsupported is the no-op platform selected on hosts that cannot register
// scheduled notifications. Every operation is a neutral no-op so callers can
// short-circuit without special-casing.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) Configure() error { return nil }

func (Unsupported) EnsurePermission() (bool, error) { return false, nil }

func (Unsupported) CancelAllReminders() error { return nil }

func (Unsupported) ScheduleAt(time.Time, string, string, int) (string, error) {
	return "", nil
}

func (Unsupported) Pending() ([]Notification, error) { return nil, nil }
