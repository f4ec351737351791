package timeutil

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Breakdown
	}{
		{
			name: "nine days minus four hours",
			now:  time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			want: Breakdown{TotalDays: 8, TotalHours: 212, Weeks: 1, RemainingDays: 1, Months: 0},
		},
		{
			name: "exactly one day",
			now:  time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			want: Breakdown{TotalDays: 1, TotalHours: 24, Weeks: 0, RemainingDays: 1, Months: 0},
		},
		{
			name: "just under one day",
			now:  time.Date(2024, 1, 2, 11, 59, 59, 0, time.UTC),
			want: Breakdown{TotalDays: 0, TotalHours: 23, Weeks: 0, RemainingDays: 0, Months: 0},
		},
		{
			name: "thirty one days is one month",
			now:  time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
			want: Breakdown{TotalDays: 31, TotalHours: 744, Weeks: 4, RemainingDays: 3, Months: 1},
		},
		{
			name: "now before start clamps to zero",
			now:  time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
			want: Breakdown{},
		},
		{
			name: "now equal to start",
			now:  start,
			want: Breakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elapsed(start, tt.now)
			if got != tt.want {
				t.Errorf("Elapsed() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestElapsedTotalDaysMatchesFloor(t *testing.T) {
	start := time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC)
	for hours := 0; hours < 24*40; hours += 7 {
		now := start.Add(time.Duration(hours) * time.Hour)
		got := Elapsed(start, now).TotalDays
		want := hours / 24
		if got != want {
			t.Fatalf("Elapsed(%d hours).TotalDays = %d, want %d", hours, got, want)
		}
	}
}

func TestElapsedUnparseableStart(t *testing.T) {
	got := Elapsed(ParseCleanStart("not-a-timestamp"), time.Now())
	if got != (Breakdown{}) {
		t.Errorf("Elapsed with unparseable start = %+v, want zero breakdown", got)
	}
}

func TestParseCleanStart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
	}{
		{name: "valid RFC3339", input: "2024-01-01T12:00:00Z", wantZero: false},
		{name: "valid with offset", input: "2024-06-15T09:30:00+02:00", wantZero: false},
		{name: "empty string", input: "", wantZero: true},
		{name: "date only", input: "2024-01-01", wantZero: true},
		{name: "garbage", input: "yesterday", wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCleanStart(tt.input)
			if got.IsZero() != tt.wantZero {
				t.Errorf("ParseCleanStart(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), tt.wantZero)
			}
		})
	}
}

func TestLocalDayNumber(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// Two moments on the same local calendar date map to the same number,
	// even straddling almost the whole day
	early := time.Date(2024, 5, 10, 0, 0, 1, 0, loc)
	late := time.Date(2024, 5, 10, 23, 59, 59, 0, loc)
	if LocalDayNumber(early) != LocalDayNumber(late) {
		t.Errorf("same local date produced different day numbers: %d vs %d",
			LocalDayNumber(early), LocalDayNumber(late))
	}

	// Consecutive dates differ by exactly one
	next := time.Date(2024, 5, 11, 0, 0, 1, 0, loc)
	if LocalDayNumber(next)-LocalDayNumber(early) != 1 {
		t.Errorf("consecutive dates differ by %d, want 1", LocalDayNumber(next)-LocalDayNumber(early))
	}

	// The number tracks the local date, not the UTC date: 23:00 in New York
	// is already the next day in UTC
	lateEvening := time.Date(2024, 5, 10, 23, 0, 0, 0, loc)
	if LocalDayNumber(lateEvening) != LocalDayNumber(early) {
		t.Errorf("late evening mapped to a different day number")
	}
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{
			name: "before target schedules today",
			now:  time.Date(2024, 4, 2, 8, 30, 0, 0, time.Local),
			hour: 9, minute: 0,
			want: time.Date(2024, 4, 2, 9, 0, 0, 0, time.Local),
		},
		{
			name: "after target schedules tomorrow",
			now:  time.Date(2024, 4, 2, 9, 30, 0, 0, time.Local),
			hour: 9, minute: 0,
			want: time.Date(2024, 4, 3, 9, 0, 0, 0, time.Local),
		},
		{
			name: "exactly at target schedules tomorrow",
			now:  time.Date(2024, 4, 2, 9, 0, 0, 0, time.Local),
			hour: 9, minute: 0,
			want: time.Date(2024, 4, 3, 9, 0, 0, 0, time.Local),
		},
		{
			name: "seconds are zeroed",
			now:  time.Date(2024, 4, 2, 8, 59, 45, 123, time.Local),
			hour: 9, minute: 0,
			want: time.Date(2024, 4, 2, 9, 0, 0, 0, time.Local),
		},
		{
			name: "late evening target",
			now:  time.Date(2024, 4, 2, 23, 45, 0, 0, time.Local),
			hour: 23, minute: 30,
			want: time.Date(2024, 4, 3, 23, 30, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.now, tt.hour, tt.minute)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
			if !got.After(tt.now) {
				t.Errorf("NextOccurrence() = %v is not strictly after now %v", got, tt.now)
			}
		})
	}
}

func TestDayCount(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		trigger time.Time
		want    int
	}{
		{name: "same instant", trigger: start, want: 0},
		{name: "under a day", trigger: start.Add(23 * time.Hour), want: 0},
		{name: "one day", trigger: start.Add(24 * time.Hour), want: 1},
		{name: "eight and a half days", trigger: start.Add(8*24*time.Hour + 12*time.Hour), want: 8},
		{name: "before start clamps to zero", trigger: start.Add(-48 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayCount(start, tt.trigger); got != tt.want {
				t.Errorf("DayCount() = %d, want %d", got, tt.want)
			}
		})
	}

	if got := DayCount(time.Time{}, start); got != 0 {
		t.Errorf("DayCount with zero start = %d, want 0", got)
	}
}
