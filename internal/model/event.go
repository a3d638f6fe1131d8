package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind distinguishes money leaving from money arriving.
type EventKind string

const (
	KindExpense EventKind = "expense"
	KindIncome  EventKind = "income"
)

// Frequency is how often a recurring event repeats. Empty means none.
type Frequency string

const (
	FreqWeekly   Frequency = "weekly"
	FreqBiWeekly Frequency = "bi-weekly"
	FreqMonthly  Frequency = "monthly"
)

// Period returns the step in days for fixed-length frequencies,
// or 0 for monthly and unrecognized values.
func (f Frequency) Period() int {
	switch f {
	case FreqWeekly:
		return 7
	case FreqBiWeekly:
		return 14
	default:
		return 0
	}
}

// CalendarEvent is a bill or income entry. Three shapes share the struct:
//
//   - a one-shot event (Recurring false, no parent)
//   - a recurring template (Recurring true, no parent), never shown directly
//   - an override instance (ParentRecurringID set), a permanent paid/deleted
//     exception to one dated occurrence of its template
//
// Dates are calendar dates at midnight UTC; there is no time-of-day.
type CalendarEvent struct {
	ID                string
	Title             string
	Amount            decimal.Decimal // non-negative; sign implied by Kind
	Date              time.Time
	Kind              EventKind
	Paid              bool
	Deleted           bool
	Recurring         bool
	Frequency         Frequency
	ParentRecurringID string
}

// IsTemplate reports whether the event is a recurring template.
func (e CalendarEvent) IsTemplate() bool {
	return e.Recurring && e.ParentRecurringID == ""
}

// IsOverride reports whether the event is an exception to a template occurrence.
func (e CalendarEvent) IsOverride() bool {
	return e.ParentRecurringID != ""
}

// SimulatedTransaction is a what-if cash flow fed to the forecast.
// It is never persisted and has no paid state.
type SimulatedTransaction struct {
	ID     string
	Title  string
	Amount decimal.Decimal
	Date   time.Time
	Kind   EventKind
}
