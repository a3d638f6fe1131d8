package recur

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return dates.Day(y, m, d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func weeklyTemplate(id string, anchor time.Time) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        id,
		Title:     "Water Bill",
		Amount:    dec("45.00"),
		Date:      anchor,
		Kind:      model.KindExpense,
		Recurring: true,
		Frequency: model.FreqWeekly,
	}
}

func occurrenceDates(t *testing.T, events []model.CalendarEvent) []string {
	t.Helper()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = dates.Format(e.Date)
	}
	return out
}

func TestExpand_OneShotInclusiveBounds(t *testing.T) {
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 31)

	oneShot := func(d time.Time) model.CalendarEvent {
		return model.CalendarEvent{ID: "e1", Title: "Dentist", Amount: dec("120.00"), Date: d, Kind: model.KindExpense}
	}

	assert.Len(t, Expand(oneShot(start), start, end), 1, "event on rangeStart is included")
	assert.Len(t, Expand(oneShot(end), start, end), 1, "event on rangeEnd is included")
	assert.Empty(t, Expand(oneShot(day(2023, time.December, 31)), start, end))
	assert.Empty(t, Expand(oneShot(day(2024, time.February, 1)), start, end))
}

func TestExpand_WeeklyJumpFromDistantAnchor(t *testing.T) {
	// Anchored four years before the window; the jump must land exactly
	// on the anchor's weekday grid.
	tmpl := weeklyTemplate("w1", day(2020, time.January, 6))

	got := Expand(tmpl, day(2024, time.January, 1), day(2024, time.January, 8))
	assert.Equal(t, []string{"2024-01-01", "2024-01-08"}, occurrenceDates(t, got))
}

func TestExpand_OccurrenceIDsDeterministic(t *testing.T) {
	tmpl := weeklyTemplate("w1", day(2024, time.January, 1))

	first := Expand(tmpl, day(2024, time.January, 1), day(2024, time.January, 15))
	second := Expand(tmpl, day(2023, time.December, 1), day(2024, time.February, 1))

	require.Len(t, first, 3)
	assert.Equal(t, "w1-2024-01-01", first[0].ID)
	assert.Equal(t, "w1-2024-01-08", first[1].ID)
	assert.Equal(t, "w1-2024-01-15", first[2].ID)

	// The same occurrence date yields the same id over a different window.
	ids := make(map[string]bool)
	for _, e := range second {
		ids[e.ID] = true
	}
	for _, e := range first {
		assert.True(t, ids[e.ID], e.ID)
	}
}

func TestExpand_BiWeekly(t *testing.T) {
	tmpl := weeklyTemplate("p1", day(2024, time.January, 5))
	tmpl.Frequency = model.FreqBiWeekly
	tmpl.Kind = model.KindIncome

	got := Expand(tmpl, day(2024, time.January, 1), day(2024, time.February, 29))
	assert.Equal(t, []string{"2024-01-05", "2024-01-19", "2024-02-02", "2024-02-16"}, occurrenceDates(t, got))
}

func TestExpand_MonthlyKeepsDayOfMonth(t *testing.T) {
	tmpl := weeklyTemplate("m1", day(2024, time.January, 15))
	tmpl.Frequency = model.FreqMonthly

	got := Expand(tmpl, day(2024, time.March, 1), day(2024, time.May, 31))
	assert.Equal(t, []string{"2024-03-15", "2024-04-15", "2024-05-15"}, occurrenceDates(t, got))
}

func TestExpand_MonthlyNoDriftFromAnchor(t *testing.T) {
	// Each occurrence is computed from the anchor, so a Jan 31 anchor
	// overflows per-month instead of drifting permanently to the 3rd.
	tmpl := weeklyTemplate("m2", day(2024, time.January, 31))
	tmpl.Frequency = model.FreqMonthly

	got := Expand(tmpl, day(2024, time.February, 1), day(2024, time.April, 30))
	assert.Equal(t, []string{"2024-03-02", "2024-03-31"}, occurrenceDates(t, got))
}

func TestExpand_MonthlyWindowOpensAfterOverflowedDate(t *testing.T) {
	// Jan 31 overflows February to Mar 2. A window opening Mar 1 must
	// still pick that occurrence up; the result cannot depend on where
	// the window starts.
	tmpl := weeklyTemplate("m3", day(2024, time.January, 31))
	tmpl.Frequency = model.FreqMonthly

	narrow := Expand(tmpl, day(2024, time.March, 1), day(2024, time.April, 30))
	assert.Equal(t, []string{"2024-03-02", "2024-03-31"}, occurrenceDates(t, narrow))

	wide := Expand(tmpl, day(2024, time.February, 1), day(2024, time.April, 30))
	assert.Equal(t, occurrenceDates(t, wide), occurrenceDates(t, narrow))

	exact := Expand(tmpl, day(2024, time.March, 2), day(2024, time.March, 2))
	assert.Equal(t, []string{"2024-03-02"}, occurrenceDates(t, exact))
}

func TestExpand_AnchorInsideWindow(t *testing.T) {
	tmpl := weeklyTemplate("w2", day(2024, time.January, 10))

	got := Expand(tmpl, day(2024, time.January, 1), day(2024, time.January, 24))
	assert.Equal(t, []string{"2024-01-10", "2024-01-17", "2024-01-24"}, occurrenceDates(t, got))
}

func TestExpand_AnchorAfterWindow(t *testing.T) {
	tmpl := weeklyTemplate("w3", day(2024, time.June, 1))
	assert.Empty(t, Expand(tmpl, day(2024, time.January, 1), day(2024, time.January, 31)))
}

func TestExpand_UnrecognizedFrequencyHitsCap(t *testing.T) {
	tmpl := weeklyTemplate("w4", day(2024, time.January, 1))
	tmpl.Frequency = model.Frequency("fortnightly-ish")

	// The date never advances; the iteration cap ends expansion without
	// an error and returns what was generated.
	got := Expand(tmpl, day(2024, time.January, 1), day(2024, time.December, 31))
	assert.Len(t, got, maxIterations)
	for _, e := range got {
		assert.True(t, e.Date.Equal(day(2024, time.January, 1)))
	}
}

func TestExpand_NotRecurringWithFrequencyIgnored(t *testing.T) {
	tmpl := weeklyTemplate("w5", day(2024, time.January, 1))
	tmpl.Recurring = false

	got := Expand(tmpl, day(2024, time.January, 1), day(2024, time.January, 31))
	require.Len(t, got, 1)
	assert.Equal(t, "w5", got[0].ID, "non-recurring event keeps its own id")
}
