package recur

import (
	"sort"
	"time"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
)

// Project flattens a full event set into the effective occurrences for
// [rangeStart, rangeEnd]: recurring templates are expanded, occurrences
// suppressed by a paid or deleted override are dropped, and one-shot
// events plus the paid override instances themselves are merged in.
// Deleted overrides are never emitted. No ordering is guaranteed.
func Project(events []model.CalendarEvent, rangeStart, rangeEnd time.Time) []model.CalendarEvent {
	rangeStart = dates.Normalize(rangeStart)
	rangeEnd = dates.Normalize(rangeEnd)

	var templates, oneShots, paidOverrides []model.CalendarEvent

	// overridden[templateID] holds the dates whose generated occurrence
	// an override replaces or removes. Matching is by exact date.
	overridden := make(map[string]map[string]bool)

	for _, e := range events {
		switch {
		case e.IsOverride():
			if !e.Paid && !e.Deleted {
				continue
			}
			key := dates.Format(dates.Normalize(e.Date))
			if overridden[e.ParentRecurringID] == nil {
				overridden[e.ParentRecurringID] = make(map[string]bool)
			}
			overridden[e.ParentRecurringID][key] = true
			if e.Paid && !e.Deleted {
				paidOverrides = append(paidOverrides, e)
			}
		case e.Deleted:
			// Soft-deleted templates and one-shots drop out entirely.
		case e.IsTemplate():
			templates = append(templates, e)
		default:
			oneShots = append(oneShots, e)
		}
	}

	var out []model.CalendarEvent
	for _, tmpl := range templates {
		for _, occ := range Expand(tmpl, rangeStart, rangeEnd) {
			if overridden[tmpl.ID][dates.Format(occ.Date)] {
				continue
			}
			out = append(out, occ)
		}
	}

	for _, e := range oneShots {
		if dates.InRange(dates.Normalize(e.Date), rangeStart, rangeEnd) {
			out = append(out, e)
		}
	}
	for _, e := range paidOverrides {
		if dates.InRange(dates.Normalize(e.Date), rangeStart, rangeEnd) {
			out = append(out, e)
		}
	}

	return out
}

// SortByDate orders events chronologically, oldest first, keeping the
// original order for same-day ties.
func SortByDate(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
