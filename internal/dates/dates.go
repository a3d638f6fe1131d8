// Package dates holds the calendar-date arithmetic shared by the
// projection and derivation components. All dates are whole calendar
// days at midnight UTC; there is no time-of-day or timezone handling.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for all date fields.
const Layout = "2006-01-02"

// ErrInvalidDateFormat is returned when a date string cannot be parsed.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Parse converts a "YYYY-MM-DD" string to a calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// Format converts a calendar date back to its "YYYY-MM-DD" form.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Normalize truncates t to midnight UTC so dates compare with Equal.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day returns the calendar date for year/month/day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays steps a date forward (or back, if n is negative) by whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths steps a date forward by whole calendar months, keeping the
// day-of-month where the target month has it. Overflow normalizes per
// time.AddDate (Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// EndOfMonth returns the last day of t's calendar month.
func EndOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// DaysBetween returns the count of whole days from a to b (negative when
// b precedes a). Both inputs are assumed normalized.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// MonthsBetween returns the count of whole calendar months from a to b,
// ignoring the day component.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// InRange reports whether d falls inside [start, end], both bounds inclusive.
func InRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
