package utils

import "time"

// DateLayout is the calendar-day key used by habit logs.
const DateLayout = "2006-01-02"

// DayKey formats t as a calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// ParseDayKey parses a DayKey back to midnight in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, key, loc)
}

// IsClockTime reports whether s is a valid HH:MM reminder time.
func IsClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
