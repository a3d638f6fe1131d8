package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
	"github.com/spendwell-dev/spendwell/internal/recur"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "spendwell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAccounts_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	a := model.Account{
		ID: "a1", Name: "Main Checking", Type: model.AccountTypeChecking,
		Balance:   dec("1234.56"),
		UpdatedAt: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveAccount(a))

	got, err := s.Accounts()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, model.AccountTypeChecking, got[0].Type)
	assert.True(t, got[0].Balance.Equal(dec("1234.56")))
}

func TestSetBalance(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveAccount(model.Account{ID: "a1", Name: "C", Type: model.AccountTypeChecking, Balance: dec("100")}))

	require.NoError(t, s.SetBalance("a1", dec("250.00"), time.Now()))
	got, err := s.Accounts()
	require.NoError(t, err)
	assert.True(t, got[0].Balance.Equal(dec("250.00")))

	assert.Error(t, s.SetBalance("missing", dec("1"), time.Now()))
}

func TestEvents_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	tmpl := model.CalendarEvent{
		ID: "rent", Title: "Rent", Amount: dec("900.00"),
		Date: dates.Day(2024, time.January, 1), Kind: model.KindExpense,
		Recurring: true, Frequency: model.FreqMonthly,
	}
	require.NoError(t, s.SaveEvent(tmpl))

	got, err := s.Event("rent")
	require.NoError(t, err)
	assert.True(t, got.IsTemplate())
	assert.Equal(t, model.FreqMonthly, got.Frequency)
	assert.True(t, got.Date.Equal(dates.Day(2024, time.January, 1)))

	_, err = s.Event("nope")
	assert.Error(t, err)
}

func TestMarkBillPaid_TemplateCreatesOverride(t *testing.T) {
	s := openTestStore(t)
	tmpl := model.CalendarEvent{
		ID: "rent", Title: "Rent", Amount: dec("900.00"),
		Date: dates.Day(2024, time.January, 1), Kind: model.KindExpense,
		Recurring: true, Frequency: model.FreqMonthly,
	}
	require.NoError(t, s.SaveEvent(tmpl))

	occDate := dates.Day(2024, time.March, 1)
	ovrID, err := s.MarkBillPaid("rent", occDate)
	require.NoError(t, err)
	assert.NotEqual(t, "rent", ovrID)

	events, err := s.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)

	// The projector now emits the paid instance instead of a generated
	// occurrence for March.
	projected := recur.Project(events, dates.Day(2024, time.March, 1), dates.Day(2024, time.March, 31))
	require.Len(t, projected, 1)
	assert.Equal(t, ovrID, projected[0].ID)
	assert.True(t, projected[0].Paid)
}

func TestMarkBillPaid_OneShotSetsFlag(t *testing.T) {
	s := openTestStore(t)
	e := model.CalendarEvent{ID: "dentist", Title: "Dentist", Amount: dec("120.00"), Date: dates.Day(2024, time.March, 10), Kind: model.KindExpense}
	require.NoError(t, s.SaveEvent(e))

	gotID, err := s.MarkBillPaid("dentist", e.Date)
	require.NoError(t, err)
	assert.Equal(t, "dentist", gotID)

	got, err := s.Event("dentist")
	require.NoError(t, err)
	assert.True(t, got.Paid)
}

func TestDeleteOccurrence_SuppressesDate(t *testing.T) {
	s := openTestStore(t)
	tmpl := model.CalendarEvent{
		ID: "gym", Title: "Gym", Amount: dec("25.00"),
		Date: dates.Day(2024, time.January, 1), Kind: model.KindExpense,
		Recurring: true, Frequency: model.FreqWeekly,
	}
	require.NoError(t, s.SaveEvent(tmpl))

	require.NoError(t, s.DeleteOccurrence("gym", dates.Day(2024, time.January, 8)))

	events, err := s.Events()
	require.NoError(t, err)
	projected := recur.Project(events, dates.Day(2024, time.January, 1), dates.Day(2024, time.January, 15))
	recur.SortByDate(projected)
	require.Len(t, projected, 2)
	assert.True(t, projected[0].Date.Equal(dates.Day(2024, time.January, 1)))
	assert.True(t, projected[1].Date.Equal(dates.Day(2024, time.January, 15)))
}

func TestDeferBill_MovesOccurrence(t *testing.T) {
	s := openTestStore(t)
	tmpl := model.CalendarEvent{
		ID: "electric", Title: "Electric", Amount: dec("90.00"),
		Date: dates.Day(2024, time.January, 5), Kind: model.KindExpense,
		Recurring: true, Frequency: model.FreqMonthly,
	}
	require.NoError(t, s.SaveEvent(tmpl))

	newID, err := s.DeferBill("electric", dates.Day(2024, time.March, 5), dates.Day(2024, time.March, 12))
	require.NoError(t, err)

	events, err := s.Events()
	require.NoError(t, err)
	projected := recur.Project(events, dates.Day(2024, time.March, 1), dates.Day(2024, time.March, 31))
	require.Len(t, projected, 1)
	assert.Equal(t, newID, projected[0].ID)
	assert.True(t, projected[0].Date.Equal(dates.Day(2024, time.March, 12)))
}

func TestLoad_FullSnapshot(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveAccount(model.Account{ID: "a1", Name: "C", Type: model.AccountTypeChecking, Balance: dec("100")}))
	require.NoError(t, s.SaveEvent(model.CalendarEvent{ID: "e1", Title: "Rent", Amount: dec("900"), Date: dates.Day(2024, time.March, 1), Kind: model.KindExpense}))
	require.NoError(t, s.SaveBucket(model.BudgetBucket{ID: "b1", Name: "Groceries", Limit: dec("400")}))
	require.NoError(t, s.SaveTransaction(model.Transaction{ID: "t1", Amount: dec("52.10"), Category: "Groceries", Status: model.StatusVerified, Date: dates.Day(2024, time.March, 2), PayPeriodID: "2024-03-01"}))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Accounts, 1)
	assert.Len(t, snap.Events, 1)
	assert.Len(t, snap.Buckets, 1)
	assert.Len(t, snap.Transactions, 1)
	assert.Equal(t, "2024-03-01", snap.Transactions[0].PayPeriodID)
}
