package reminder

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"steady/internal/affirmation"
	"steady/internal/constants"
	"steady/internal/logger"
	"steady/internal/notify"
	"steady/internal/timeutil"
)

// Params is the full reminder-affecting state for one sync call. The service
// is stateless over it: every call re-derives the complete schedule from
// scratch, so callers pass the latest desired values on every invocation.
type Params struct {
	Enabled     bool
	CleanStart  string // RFC3339 clean-start instant
	DisplayName string // optional, personalizes notification bodies
	Hour        *int   // nil or out of range falls back to the default
	Minute      *int
}

// Service reconciles the platform's scheduled-notification state with the
// app's current reminder settings. It owns the affirmation session for the
// lifetime of the process.
type Service struct {
	platform notify.Platform
	session  *affirmation.Session

	// Sync calls are serialized; a call superseded while waiting for the
	// lock skips its own work so the most recently requested state wins.
	mu         sync.Mutex
	seq        atomic.Uint64
	applied    uint64
	lastResult bool
}

func New(platform notify.Platform) *Service {
	return &Service{
		platform: platform,
		session:  affirmation.NewSession(),
	}
}

// Supported reports whether the host platform can schedule reminders, for
// UI gating.
func (s *Service) Supported() bool {
	return s.platform.Supported()
}

// EnsurePermission checks or requests notification permission independent of
// a full sync. False on denial or an unsupported platform; never errors.
func (s *Service) EnsurePermission() bool {
	granted, err := s.platform.EnsurePermission()
	if err != nil {
		logger.Warn("Permission check failed", "error", err)
		return false
	}
	return granted
}

// Sync cancels all previously scheduled daily reminders and, when enabling,
// schedules the next 365. It returns true iff the resulting state is
// actually scheduled and enabled, or intentionally disabled; false signals a
// permission or platform failure the caller must reconcile by forcing its
// persisted enabled flag off. Overlapping calls resolve last-write-wins: a
// call superseded by a newer one reports the newer call's result.
func (s *Service) Sync(p Params) bool {
	seq := s.seq.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		return s.lastResult
	}
	s.applied = seq
	s.lastResult = s.syncAt(p, time.Now())
	return s.lastResult
}

// syncAt runs one reconciliation against an explicit clock.
func (s *Service) syncAt(p Params, now time.Time) bool {
	if !s.platform.Supported() {
		return false
	}

	if err := s.platform.Configure(); err != nil {
		logger.Error("Notification platform setup failed", "error", err)
		return false
	}

	// Always clear the previous schedule first, whether enabling or
	// disabling. This is what prevents duplicate or stale reminders from
	// surviving a parameter change.
	if err := s.platform.CancelAllReminders(); err != nil {
		logger.Error("Failed to cancel existing reminders", "error", err)
		return false
	}

	if !p.Enabled {
		return true
	}

	granted, err := s.platform.EnsurePermission()
	if err != nil {
		logger.Error("Permission request failed", "error", err)
		return false
	}
	if !granted {
		return false
	}

	hour := normalizeHour(p.Hour)
	minute := normalizeMinute(p.Minute)
	base := timeutil.NextOccurrence(now, hour, minute)
	cleanStart := timeutil.ParseCleanStart(p.CleanStart)

	// Fire all submissions, then wait for all. The submissions are
	// independent and the platform's registration order does not matter.
	var wg sync.WaitGroup
	var failures atomic.Int64
	for offset := 0; offset < constants.ReminderWindowDays; offset++ {
		// Calendar-day arithmetic keeps the wall-clock time stable across
		// DST transitions.
		trigger := base.AddDate(0, 0, offset)
		dayCount := timeutil.DayCount(cleanStart, trigger)
		title := Title(dayCount)
		body := s.body(dayCount, p.DisplayName)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.platform.ScheduleAt(trigger, title, body, dayCount); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		logger.Error("Daily reminder scheduling incomplete",
			"failed", n, "window", constants.ReminderWindowDays)
		return false
	}
	return true
}

// Title renders the day-count headline with singular form at exactly one.
func Title(dayCount int) string {
	if dayCount == 1 {
		return "1 day clean"
	}
	return fmt.Sprintf("%d days clean", dayCount)
}

// body picks the session affirmation for the day and appends the display
// name when present, trimming the affirmation's closing period so the
// punctuation stays clean.
func (s *Service) body(dayCount int, displayName string) string {
	aff := s.session.ForDay(dayCount)
	if displayName == "" {
		return aff
	}
	return strings.TrimSuffix(aff, ".") + ", " + displayName + "."
}

// Affirmation exposes the session rotation for the status and trust screens
// so in-app copy matches what a notification for the same day would say.
func (s *Service) Affirmation(dayCount int) string {
	return s.session.ForDay(dayCount)
}

func normalizeHour(h *int) int {
	if h == nil || *h < 0 || *h > 23 {
		return constants.DefaultReminderHour
	}
	return *h
}

func normalizeMinute(m *int) int {
	if m == nil || *m < 0 || *m > 59 {
		return constants.DefaultReminderMinute
	}
	return *m
}
