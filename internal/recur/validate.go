package recur

import (
	"fmt"

	"github.com/spendwell-dev/spendwell/internal/model"
)

// ValidationError describes a single invariant violation in an event set.
type ValidationError struct {
	Invariant   int
	EventID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EventID, e.Description)
}

// ValidateEvents enforces 4 invariants on a calendar event set before it
// is persisted or projected.
func ValidateEvents(events []model.CalendarEvent) []ValidationError {
	var errs []ValidationError

	templateIDs := make(map[string]bool)
	for _, e := range events {
		if e.IsTemplate() {
			templateIDs[e.ID] = true
		}
	}

	for _, e := range events {
		// Invariant 1: amounts are non-negative magnitudes.
		if e.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EventID:     e.ID,
				Description: fmt.Sprintf("negative amount %s", e.Amount.StringFixed(2)),
			})
		}

		// Invariant 2: a recurring template never carries a parent id.
		if e.Recurring && e.ParentRecurringID != "" {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EventID:     e.ID,
				Description: "recurring template must not reference a parent",
			})
		}

		if e.IsOverride() {
			// Invariant 3: an override references a known template.
			if !templateIDs[e.ParentRecurringID] {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EventID:     e.ID,
					Description: fmt.Sprintf("unknown parent template %q", e.ParentRecurringID),
				})
			}

			// Invariant 4: an override records a paid or deleted exception.
			if !e.Paid && !e.Deleted {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EventID:     e.ID,
					Description: "override must be marked paid or deleted",
				})
			}
		}
	}

	return errs
}
