package id

import (
	"fmt"
	"time"

	"github.com/spendwell-dev/spendwell/internal/dates"
)

// Occurrence returns the synthetic id for one generated occurrence of a
// recurring template, like "tmpl-42-2024-01-08". The same template and
// date always produce the same id; occurrences are ephemeral view data
// regenerated on every expansion, never persisted.
func Occurrence(templateID string, date time.Time) string {
	return templateID + "-" + dates.Format(date)
}

// ParseOccurrence splits an occurrence id back into template id and date.
func ParseOccurrence(occID string) (templateID string, date time.Time, err error) {
	// The date suffix is fixed-width: "-YYYY-MM-DD".
	const suffixLen = len(dates.Layout) + 1
	if len(occID) <= suffixLen || occID[len(occID)-suffixLen] != '-' {
		return "", time.Time{}, fmt.Errorf("invalid occurrence id: %q", occID)
	}

	templateID = occID[:len(occID)-suffixLen]
	date, err = dates.Parse(occID[len(occID)-suffixLen+1:])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid occurrence id %q: %w", occID, err)
	}
	return templateID, date, nil
}
