// Package recur expands recurring calendar-event templates into concrete
// dated occurrences and projects whole event sets over a window.
package recur

import (
	"time"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/id"
	"github.com/spendwell-dev/spendwell/internal/model"
)

// maxIterations bounds expansion against inputs that never advance the
// date (an unrecognized frequency). Hitting the cap is not an error;
// expansion returns whatever was generated.
const maxIterations = 1000

// Expand generates the occurrences of one template inside
// [rangeStart, rangeEnd], both bounds inclusive.
//
// A non-recurring template is returned as-is when its date falls in the
// window. A recurring one is stepped from its anchor date by the
// frequency's period. The first candidate on or after rangeStart is
// found in closed form from whole elapsed periods, so a template
// anchored years in the past does not cost years of iteration.
func Expand(tmpl model.CalendarEvent, rangeStart, rangeEnd time.Time) []model.CalendarEvent {
	rangeStart = dates.Normalize(rangeStart)
	rangeEnd = dates.Normalize(rangeEnd)

	if !tmpl.Recurring || tmpl.Frequency == "" {
		if dates.InRange(dates.Normalize(tmpl.Date), rangeStart, rangeEnd) {
			return []model.CalendarEvent{tmpl}
		}
		return nil
	}

	anchor := dates.Normalize(tmpl.Date)
	if anchor.After(rangeEnd) {
		return nil
	}

	var out []model.CalendarEvent
	n := firstOnOrAfter(tmpl.Frequency, anchor, rangeStart)
	for iter := 0; iter < maxIterations; iter++ {
		occDate := nthOccurrence(tmpl.Frequency, anchor, n)
		if occDate.After(rangeEnd) {
			break
		}
		if !occDate.Before(rangeStart) {
			out = append(out, occurrenceOf(tmpl, occDate))
		}
		n++
	}
	return out
}

// firstOnOrAfter returns the smallest occurrence index whose date is on
// or after start. Index 0 is the anchor itself.
func firstOnOrAfter(freq model.Frequency, anchor, start time.Time) int {
	if !anchor.Before(start) {
		return 0
	}

	if period := freq.Period(); period > 0 {
		elapsed := dates.DaysBetween(anchor, start)
		return (elapsed + period - 1) / period
	}

	if freq == model.FreqMonthly {
		n := dates.MonthsBetween(anchor, start)
		if n < 0 {
			n = 0
		}
		// Month overflow can land the estimate a step off in either
		// direction: a short month normalizes the occurrence forward, so
		// occurrence n may sit before start, or occurrence n-1 may have
		// been pushed to start or later.
		for nthOccurrence(freq, anchor, n).Before(start) {
			n++
		}
		for n > 0 && !nthOccurrence(freq, anchor, n-1).Before(start) {
			n--
		}
		return n
	}

	// Unrecognized frequency never advances past the anchor.
	return 0
}

// nthOccurrence computes occurrence n directly from the anchor, so
// monthly steps never accumulate end-of-month drift.
func nthOccurrence(freq model.Frequency, anchor time.Time, n int) time.Time {
	if period := freq.Period(); period > 0 {
		return dates.AddDays(anchor, n*period)
	}
	if freq == model.FreqMonthly {
		return dates.AddMonths(anchor, n)
	}
	return anchor
}

// occurrenceOf builds the ephemeral view instance for one generated date.
// Its id is deterministic so repeated expansions agree.
func occurrenceOf(tmpl model.CalendarEvent, date time.Time) model.CalendarEvent {
	return model.CalendarEvent{
		ID:                id.Occurrence(tmpl.ID, date),
		Title:             tmpl.Title,
		Amount:            tmpl.Amount,
		Date:              date,
		Kind:              tmpl.Kind,
		ParentRecurringID: tmpl.ID,
	}
}
