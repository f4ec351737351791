package models

import (
	"encoding/json"
	"testing"

	"steady/internal/constants"
)

func TestReminderEnabledDefaultsOff(t *testing.T) {
	var s Settings
	if s.ReminderEnabled() {
		t.Error("zero-value settings report reminders enabled")
	}

	s.SetReminderEnabled(true)
	if !s.ReminderEnabled() {
		t.Error("ReminderEnabled = false after explicit enable")
	}
	s.SetReminderEnabled(false)
	if s.ReminderEnabled() {
		t.Error("ReminderEnabled = true after explicit disable")
	}
}

func TestReminderTimeClamping(t *testing.T) {
	tests := []struct {
		name       string
		hour       *int
		minute     *int
		wantHour   int
		wantMinute int
	}{
		{name: "missing values use defaults", wantHour: constants.DefaultReminderHour, wantMinute: constants.DefaultReminderMinute},
		{name: "valid values pass through", hour: intPtr(20), minute: intPtr(45), wantHour: 20, wantMinute: 45},
		{name: "midnight is valid", hour: intPtr(0), minute: intPtr(0), wantHour: 0, wantMinute: 0},
		{name: "hour too large falls back", hour: intPtr(24), minute: intPtr(30), wantHour: constants.DefaultReminderHour, wantMinute: 30},
		{name: "negative hour falls back", hour: intPtr(-1), minute: intPtr(30), wantHour: constants.DefaultReminderHour, wantMinute: 30},
		{name: "minute too large falls back", hour: intPtr(8), minute: intPtr(60), wantHour: 8, wantMinute: constants.DefaultReminderMinute},
		{name: "negative minute falls back", hour: intPtr(8), minute: intPtr(-5), wantHour: 8, wantMinute: constants.DefaultReminderMinute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{DailyReminderHour: tt.hour, DailyReminderMinute: tt.minute}
			if got := s.ReminderHour(); got != tt.wantHour {
				t.Errorf("ReminderHour() = %d, want %d", got, tt.wantHour)
			}
			if got := s.ReminderMinute(); got != tt.wantMinute {
				t.Errorf("ReminderMinute() = %d, want %d", got, tt.wantMinute)
			}
		})
	}
}

func TestSettingsAbsentFieldsStayAbsent(t *testing.T) {
	data, err := json.Marshal(Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("zero-value settings marshal to %s, want {}", data)
	}

	// A partial document leaves the other fields at their defaults
	var s Settings
	if err := json.Unmarshal([]byte(`{"daily_reminder_enabled":true}`), &s); err != nil {
		t.Fatal(err)
	}
	if !s.ReminderEnabled() {
		t.Error("enabled flag lost on unmarshal")
	}
	if s.ReminderHour() != constants.DefaultReminderHour {
		t.Errorf("ReminderHour() = %d for absent field, want default", s.ReminderHour())
	}
}

func TestCheckInValidate(t *testing.T) {
	for _, mood := range []int{1, 3, 5} {
		c := CheckIn{Mood: mood}
		if err := c.Validate(); err != nil {
			t.Errorf("Validate with mood %d failed: %v", mood, err)
		}
	}
	for _, mood := range []int{0, 6, -3} {
		c := CheckIn{Mood: mood}
		if err := c.Validate(); err == nil {
			t.Errorf("Validate with mood %d succeeded, want error", mood)
		}
	}
}

func TestNoteValidate(t *testing.T) {
	n := Note{Text: "made it through today"}
	if err := n.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	empty := Note{}
	if err := empty.Validate(); err == nil {
		t.Error("Validate of empty note succeeded, want error")
	}
}

func intPtr(v int) *int { return &v }
