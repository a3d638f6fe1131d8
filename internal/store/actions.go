package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
	"github.com/spendwell-dev/spendwell/internal/recur"
)

// MarkBillPaid marks one bill occurrence paid as of the given date. For
// a one-shot event the paid flag is set directly; for a recurring
// template a paid override instance is recorded against that date, a
// permanent exception the projector emits in place of the generated
// occurrence. Returns the id of the written event.
func (s *Store) MarkBillPaid(eventID string, occurrenceDate time.Time) (string, error) {
	e, err := s.Event(eventID)
	if err != nil {
		return "", err
	}

	if !e.IsTemplate() {
		e.Paid = true
		if err := s.SaveEvent(e); err != nil {
			return "", err
		}
		return e.ID, nil
	}

	override := model.CalendarEvent{
		ID:                uuid.NewString(),
		Title:             e.Title,
		Amount:            e.Amount,
		Date:              dates.Normalize(occurrenceDate),
		Kind:              e.Kind,
		Paid:              true,
		ParentRecurringID: e.ID,
	}
	if err := s.saveValidated(override); err != nil {
		return "", err
	}
	return override.ID, nil
}

// DeleteOccurrence removes one occurrence of a recurring template by
// recording a deleted override. One-shot events are soft-deleted in
// place.
func (s *Store) DeleteOccurrence(eventID string, occurrenceDate time.Time) error {
	e, err := s.Event(eventID)
	if err != nil {
		return err
	}

	if !e.IsTemplate() {
		e.Deleted = true
		return s.SaveEvent(e)
	}

	override := model.CalendarEvent{
		ID:                uuid.NewString(),
		Title:             e.Title,
		Amount:            e.Amount,
		Date:              dates.Normalize(occurrenceDate),
		Kind:              e.Kind,
		Deleted:           true,
		ParentRecurringID: e.ID,
	}
	return s.saveValidated(override)
}

// DeferBill pushes one occurrence of a bill to a later date: the
// original date is suppressed with a deleted override and a one-shot
// copy is created on the new date.
func (s *Store) DeferBill(eventID string, occurrenceDate, newDate time.Time) (string, error) {
	e, err := s.Event(eventID)
	if err != nil {
		return "", err
	}

	if e.IsTemplate() {
		if err := s.DeleteOccurrence(eventID, occurrenceDate); err != nil {
			return "", err
		}
	} else {
		e.Deleted = true
		if err := s.SaveEvent(e); err != nil {
			return "", err
		}
	}

	deferred := model.CalendarEvent{
		ID:     uuid.NewString(),
		Title:  e.Title,
		Amount: e.Amount,
		Date:   dates.Normalize(newDate),
		Kind:   e.Kind,
	}
	if err := s.SaveEvent(deferred); err != nil {
		return "", err
	}
	return deferred.ID, nil
}

// saveValidated checks the event set invariants with the new event
// included before writing it.
func (s *Store) saveValidated(e model.CalendarEvent) error {
	existing, err := s.Events()
	if err != nil {
		return err
	}
	if verrs := recur.ValidateEvents(append(existing, e)); len(verrs) > 0 {
		return fmt.Errorf("validation failed: %s", verrs[0].Error())
	}
	return s.SaveEvent(e)
}
