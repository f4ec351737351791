package timeutil

import (
	"time"

	"steady/internal/constants"
)

const day = 24 * time.Hour

// Breakdown is an elapsed-time summary relative to a clean-start instant.
// Months is an approximation (days / 30), not calendar-accurate.
type Breakdown struct {
	TotalDays     int
	TotalHours    int
	Weeks         int
	RemainingDays int
	Months        int
}

// ParseCleanStart parses an RFC3339 clean-start timestamp. It returns the
// zero time on failure; callers treat that as zero elapsed.
func ParseCleanStart(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Elapsed computes the elapsed-time breakdown between start and now. All
// fields clamp to zero when now precedes start or start is the zero time;
// it never returns negative values.
func Elapsed(start, now time.Time) Breakdown {
	if start.IsZero() || !now.After(start) {
		return Breakdown{}
	}

	d := now.Sub(start)
	totalDays := int(d / day)
	return Breakdown{
		TotalDays:     totalDays,
		TotalHours:    int(d / time.Hour),
		Weeks:         totalDays / 7,
		RemainingDays: totalDays % 7,
		Months:        totalDays / 30,
	}
}

// ElapsedSince is Elapsed against the current time, parsing the clean-start
// string first. Unparseable input yields a zero breakdown.
func ElapsedSince(cleanStart string) Breakdown {
	return Elapsed(ParseCleanStart(cleanStart), time.Now())
}

// LocalDayNumber maps a moment to its local calendar day number: an integer
// that increases by exactly one per local calendar date. The date components
// are re-anchored in UTC before the epoch division so two moments on the
// same local date always map to the same number, even near midnight.
func LocalDayNumber(t time.Time) int {
	utcMidnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(utcMidnight.Unix() / 86400)
}

// ParseWallClock parses a wall-clock time string in HH:MM form.
func ParseWallClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}

// NextOccurrence returns the first instant strictly after now whose local
// wall-clock time is hour:minute, with seconds and nanoseconds zeroed. If
// the target time today has already passed (or is exactly now), it advances
// one calendar day, which stays correct across DST transitions.
func NextOccurrence(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// DayCount returns the whole days elapsed between the clean-start instant
// and trigger, floored and clamped to zero.
func DayCount(start, trigger time.Time) int {
	if start.IsZero() || trigger.Before(start) {
		return 0
	}
	return int(trigger.Sub(start) / day)
}
