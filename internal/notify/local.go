package notify

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"steady/internal/constants"
	"steady/internal/logger"
)

// permissionScope is the single permission the app ever requests.
const permissionScope = "notifications"

// LocalPlatform is the real notification platform: scheduled notifications
// live in a sqlite store under the user config directory and a local agent
// process renders them when due.
type LocalPlatform struct {
	configDir string
	store     *Store
	agent     *Agent

	configureOnce sync.Once
	configureErr  error
}

func NewLocalPlatform(configDir string) *LocalPlatform {
	appDir := filepath.Join(configDir, constants.AppName)
	return &LocalPlatform{
		configDir: appDir,
		store:     NewStore(filepath.Join(appDir, constants.NotificationDBName)),
		agent:     NewAgent(appDir),
	}
}

func (p *LocalPlatform) Supported() bool { return true }

// Configure opens the notification store and registers the daily-reminder
// channel with its presentation policy: banner shown, no sound, no badge,
// gentle vibration and a calm tint. Only the first call takes effect.
func (p *LocalPlatform) Configure() error {
	p.configureOnce.Do(func() {
		if err := p.store.Open(); err != nil {
			p.configureErr = err
			return
		}
		p.configureErr = p.store.RegisterChannel(Channel{
			ID:         constants.ReminderChannelID,
			Name:       constants.ReminderChannelName,
			Importance: "default",
			Vibration:  "0,150,60,150",
			Color:      "#7BA05B",
			Banner:     true,
			Sound:      false,
			Badge:      false,
		})
	})
	return p.configureErr
}

// EnsurePermission returns true immediately when a grant is on record.
// Otherwise it requests permission by probing for a live delivery agent; a
// successful probe is persisted as a grant, a failed one is reported as a
// denial without being persisted.
func (p *LocalPlatform) EnsurePermission() (bool, error) {
	if err := p.Configure(); err != nil {
		return false, err
	}

	granted, err := p.store.PermissionGranted(permissionScope)
	if err != nil {
		return false, err
	}
	if granted {
		return true, nil
	}

	if !p.agent.Reachable() {
		logger.Debug("Notification permission denied, delivery agent unreachable")
		return false, nil
	}
	if err := p.store.GrantPermission(permissionScope); err != nil {
		return false, err
	}
	return true, nil
}

// CancelAllReminders enumerates every pending notification and cancels the
// ones tagged with the daily-reminder kind. Notifications belonging to other
// kinds are untouched.
func (p *LocalPlatform) CancelAllReminders() error {
	if err := p.Configure(); err != nil {
		return err
	}

	pending, err := p.store.Pending("")
	if err != nil {
		return err
	}
	for _, n := range pending {
		if n.Kind != constants.ReminderKind {
			continue
		}
		if err := p.store.Cancel(n.ID); err != nil {
			return err
		}
	}
	return nil
}

func (p *LocalPlatform) ScheduleAt(trigger time.Time, title, body string, dayCount int) (string, error) {
	if err := p.Configure(); err != nil {
		return "", err
	}

	n := Notification{
		ID:        uuid.NewString(),
		Kind:      constants.ReminderKind,
		TriggerAt: trigger,
		Title:     title,
		Body:      body,
		DayCount:  dayCount,
	}
	if err := p.store.Schedule(n); err != nil {
		return "", err
	}
	return n.ID, nil
}

func (p *LocalPlatform) Pending() ([]Notification, error) {
	if err := p.Configure(); err != nil {
		return nil, err
	}
	return p.store.Pending(constants.ReminderKind)
}

// DeliverDue pushes every due notification through the delivery agent and
// marks it delivered. Individual push failures are logged and skipped so one
// bad notification cannot wedge the queue; the first store error aborts.
func (p *LocalPlatform) DeliverDue(now time.Time) (int, error) {
	if err := p.Configure(); err != nil {
		return 0, err
	}

	due, err := p.store.Due(now)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, n := range due {
		if err := p.agent.Notify(n.Title, n.Body); err != nil {
			logger.Warn("Failed to push notification", "id", n.ID, "error", err)
			continue
		}
		if err := p.store.MarkDelivered(n.ID, now); err != nil {
			return delivered, fmt.Errorf("pushed but failed to mark delivered: %w", err)
		}
		delivered++
	}
	return delivered, nil
}

// Agent exposes the delivery agent client for diagnostics.
func (p *LocalPlatform) Agent() *Agent {
	return p.agent
}

// Close releases the notification store.
func (p *LocalPlatform) Close() error {
	return p.store.Close()
}
