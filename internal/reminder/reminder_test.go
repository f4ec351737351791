package reminder

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"steady/internal/constants"
	"steady/internal/notify"
)

// fakePlatform is an in-memory Platform for exercising the scheduler.
type fakePlatform struct {
	mu sync.Mutex

	supported    bool
	permission   bool
	failSchedule int // fail the first N ScheduleAt calls

	configureCalls  int
	cancelCalls     int
	permissionCalls int
	scheduleCalls   int
	nextID          int
	scheduled       []notify.Notification
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{supported: true, permission: true}
}

func (f *fakePlatform) Supported() bool {
	return f.supported
}

func (f *fakePlatform) Configure() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configureCalls++
	return nil
}

func (f *fakePlatform) EnsurePermission() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.permissionCalls++
	return f.permission, nil
}

func (f *fakePlatform) CancelAllReminders() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelCalls++
	kept := f.scheduled[:0]
	for _, n := range f.scheduled {
		if n.Kind != constants.ReminderKind {
			kept = append(kept, n)
		}
	}
	f.scheduled = kept
	return nil
}

func (f *fakePlatform) ScheduleAt(trigger time.Time, title, body string, dayCount int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduleCalls++
	if f.failSchedule > 0 {
		f.failSchedule--
		return "", errors.New("platform rejected submission")
	}
	f.nextID++
	id := fmt.Sprintf("n-%d", f.nextID)
	f.scheduled = append(f.scheduled, notify.Notification{
		ID:        id,
		Kind:      constants.ReminderKind,
		TriggerAt: trigger,
		Title:     title,
		Body:      body,
		DayCount:  dayCount,
	})
	return id, nil
}

func (f *fakePlatform) Pending() ([]notify.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notify.Notification, len(f.scheduled))
	copy(out, f.scheduled)
	return out, nil
}

func (f *fakePlatform) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configureCalls + f.cancelCalls + f.permissionCalls + f.scheduleCalls
}

func intPtr(v int) *int { return &v }

func TestSyncDisableAlwaysSucceeds(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	now := time.Date(2024, 4, 2, 8, 30, 0, 0, time.Local)

	// Schedule first so disabling has something to clear
	if ok := svc.syncAt(Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z"}, now); !ok {
		t.Fatal("enable sync failed")
	}
	if len(platform.scheduled) != constants.ReminderWindowDays {
		t.Fatalf("expected %d scheduled, got %d", constants.ReminderWindowDays, len(platform.scheduled))
	}

	if ok := svc.syncAt(Params{Enabled: false, CleanStart: "2024-01-01T12:00:00Z"}, now); !ok {
		t.Error("disable sync returned false, want true")
	}
	if len(platform.scheduled) != 0 {
		t.Errorf("expected zero scheduled after disable, got %d", len(platform.scheduled))
	}

	// Disabling with nothing scheduled still succeeds
	if ok := svc.syncAt(Params{Enabled: false}, now); !ok {
		t.Error("disable sync on empty state returned false, want true")
	}
}

func TestSyncEnableSchedulesFullWindow(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	now := time.Date(2024, 4, 2, 8, 30, 0, 0, time.Local)

	ok := svc.syncAt(Params{
		Enabled:    true,
		CleanStart: "2024-01-01T12:00:00Z",
		Hour:       intPtr(9),
		Minute:     intPtr(0),
	}, now)
	if !ok {
		t.Fatal("sync returned false, want true")
	}

	if len(platform.scheduled) != constants.ReminderWindowDays {
		t.Fatalf("expected %d notifications, got %d", constants.ReminderWindowDays, len(platform.scheduled))
	}
	for _, n := range platform.scheduled {
		if !n.TriggerAt.After(now) {
			t.Errorf("trigger %v is not strictly after now %v", n.TriggerAt, now)
		}
		if n.Kind != constants.ReminderKind {
			t.Errorf("notification kind = %q, want %q", n.Kind, constants.ReminderKind)
		}
	}
}

func TestSyncFirstTriggerTodayOrTomorrow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before reminder time triggers today",
			now:  time.Date(2024, 4, 2, 8, 30, 0, 0, time.Local),
			want: time.Date(2024, 4, 2, 9, 0, 0, 0, time.Local),
		},
		{
			name: "after reminder time triggers tomorrow",
			now:  time.Date(2024, 4, 2, 9, 30, 0, 0, time.Local),
			want: time.Date(2024, 4, 3, 9, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := newFakePlatform()
			svc := New(platform)

			if ok := svc.syncAt(Params{
				Enabled:    true,
				CleanStart: "2024-01-01T12:00:00Z",
				Hour:       intPtr(9),
				Minute:     intPtr(0),
			}, tt.now); !ok {
				t.Fatal("sync returned false")
			}

			earliest := platform.scheduled[0].TriggerAt
			for _, n := range platform.scheduled {
				if n.TriggerAt.Before(earliest) {
					earliest = n.TriggerAt
				}
			}
			if !earliest.Equal(tt.want) {
				t.Errorf("first trigger = %v, want %v", earliest, tt.want)
			}
		})
	}
}

func TestSyncReplacesPreviousSchedule(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	now := time.Date(2024, 4, 2, 7, 0, 0, 0, time.Local)
	params := Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z", Hour: intPtr(9), Minute: intPtr(0)}

	if ok := svc.syncAt(params, now); !ok {
		t.Fatal("first sync failed")
	}
	params.Hour = intPtr(20)
	if ok := svc.syncAt(params, now); !ok {
		t.Fatal("second sync failed")
	}

	if len(platform.scheduled) != constants.ReminderWindowDays {
		t.Fatalf("expected %d notifications after reschedule, got %d",
			constants.ReminderWindowDays, len(platform.scheduled))
	}
	for _, n := range platform.scheduled {
		if n.TriggerAt.Hour() != 20 {
			t.Errorf("stale notification at hour %d survived the reschedule", n.TriggerAt.Hour())
		}
	}
}

func TestSyncUnsupportedPlatform(t *testing.T) {
	platform := newFakePlatform()
	platform.supported = false
	svc := New(platform)

	ok := svc.syncAt(Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z"}, time.Now())
	if ok {
		t.Error("sync on unsupported platform returned true, want false")
	}
	if calls := platform.totalCalls(); calls != 0 {
		t.Errorf("made %d platform calls beyond the support check, want 0", calls)
	}
}

func TestSyncPermissionDenied(t *testing.T) {
	platform := newFakePlatform()
	platform.permission = false
	svc := New(platform)

	ok := svc.syncAt(Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z"}, time.Now())
	if ok {
		t.Error("sync without permission returned true, want false")
	}
	if len(platform.scheduled) != 0 {
		t.Errorf("scheduled %d notifications without permission", len(platform.scheduled))
	}
	// Disabling never needs permission
	if ok := svc.syncAt(Params{Enabled: false}, time.Now()); !ok {
		t.Error("disable sync returned false on denied permission, want true")
	}
}

func TestSyncSubmissionFailureReportsFalse(t *testing.T) {
	platform := newFakePlatform()
	platform.failSchedule = 1
	svc := New(platform)

	ok := svc.syncAt(Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z"}, time.Now())
	if ok {
		t.Error("sync with a failed submission returned true, want false")
	}
}

func TestSyncDayCountAndContent(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	// Clean start at noon local; sync in the early morning nine days later
	cleanStart := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.Local)

	ok := svc.syncAt(Params{
		Enabled:     true,
		CleanStart:  cleanStart.Format(time.RFC3339),
		DisplayName: "Sam",
		Hour:        intPtr(9),
		Minute:      intPtr(0),
	}, now)
	if !ok {
		t.Fatal("sync failed")
	}

	for _, n := range platform.scheduled {
		wantDays := int(n.TriggerAt.Sub(cleanStart) / (24 * time.Hour))
		if wantDays < 0 {
			wantDays = 0
		}
		if n.DayCount != wantDays {
			t.Errorf("trigger %v: DayCount = %d, want %d", n.TriggerAt, n.DayCount, wantDays)
		}
		if n.Title != Title(n.DayCount) {
			t.Errorf("title = %q, want %q", n.Title, Title(n.DayCount))
		}
		if n.Body == "" {
			t.Error("notification body is empty")
		}
		if got, want := n.Body[len(n.Body)-6:], ", Sam."; got != want {
			t.Errorf("body %q does not end with %q", n.Body, want)
		}
	}

	// First trigger is 2024-01-10 09:00 local, 8 full days after clean start
	first := platform.scheduled[0]
	for _, n := range platform.scheduled {
		if n.TriggerAt.Before(first.TriggerAt) {
			first = n
		}
	}
	if first.DayCount != 8 {
		t.Errorf("first DayCount = %d, want 8", first.DayCount)
	}
}

func TestSyncNormalizesInvalidTime(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	now := time.Date(2024, 4, 2, 7, 0, 0, 0, time.Local)

	ok := svc.syncAt(Params{
		Enabled:    true,
		CleanStart: "2024-01-01T12:00:00Z",
		Hour:       intPtr(99),
		Minute:     intPtr(-5),
	}, now)
	if !ok {
		t.Fatal("sync failed")
	}

	for _, n := range platform.scheduled {
		if n.TriggerAt.Hour() != constants.DefaultReminderHour || n.TriggerAt.Minute() != constants.DefaultReminderMinute {
			t.Fatalf("trigger %v does not use the default time %02d:%02d",
				n.TriggerAt, constants.DefaultReminderHour, constants.DefaultReminderMinute)
		}
	}
}

func TestSyncUnparseableCleanStart(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	now := time.Date(2024, 4, 2, 7, 0, 0, 0, time.Local)

	if ok := svc.syncAt(Params{Enabled: true, CleanStart: "garbage"}, now); !ok {
		t.Fatal("sync failed")
	}
	for _, n := range platform.scheduled {
		if n.DayCount != 0 {
			t.Errorf("DayCount = %d with unparseable clean start, want 0", n.DayCount)
		}
	}
}

func TestTitlePluralization(t *testing.T) {
	tests := []struct {
		dayCount int
		want     string
	}{
		{0, "0 days clean"},
		{1, "1 day clean"},
		{2, "2 days clean"},
		{365, "365 days clean"},
	}
	for _, tt := range tests {
		if got := Title(tt.dayCount); got != tt.want {
			t.Errorf("Title(%d) = %q, want %q", tt.dayCount, got, tt.want)
		}
	}
}

func TestBodyWithoutDisplayName(t *testing.T) {
	svc := New(newFakePlatform())
	body := svc.body(3, "")
	if body != svc.session.ForDay(3) {
		t.Errorf("body without name = %q, want bare affirmation %q", body, svc.session.ForDay(3))
	}
}

func TestSyncSerializesConcurrentCalls(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	params := Params{Enabled: true, CleanStart: "2024-01-01T12:00:00Z"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Sync(params)
		}()
	}
	wg.Wait()

	// Whatever the interleaving, the winning sync leaves exactly one full
	// window behind
	if len(platform.scheduled) != constants.ReminderWindowDays {
		t.Errorf("expected %d notifications after concurrent syncs, got %d",
			constants.ReminderWindowDays, len(platform.scheduled))
	}
}

func TestEnsurePermission(t *testing.T) {
	platform := newFakePlatform()
	svc := New(platform)
	if !svc.EnsurePermission() {
		t.Error("EnsurePermission = false with granting platform")
	}

	platform.permission = false
	if svc.EnsurePermission() {
		t.Error("EnsurePermission = true with denying platform")
	}
}

func TestSupported(t *testing.T) {
	svc := New(notify.Unsupported{})
	if svc.Supported() {
		t.Error("Supported = true for the unsupported platform")
	}
	if svc.Sync(Params{Enabled: true}) {
		t.Error("Sync on unsupported platform returned true")
	}
}
