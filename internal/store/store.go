// Package store provides the SQLite-backed household snapshot store.
// The calculation packages never touch it; they receive plain slices
// loaded here and are re-run on every change.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the household database.
type Store struct {
	db *sql.DB
}

// Snapshot is one immutable read of every entity collection, the input
// shape the calculation layer consumes.
type Snapshot struct {
	Accounts     []model.Account
	Events       []model.CalendarEvent
	Buckets      []model.BudgetBucket
	Transactions []model.Transaction
}

// Open opens or creates the household database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening household db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the household database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads a full snapshot.
func (s *Store) Load() (Snapshot, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return Snapshot{}, err
	}
	events, err := s.Events()
	if err != nil {
		return Snapshot{}, err
	}
	bkts, err := s.Buckets()
	if err != nil {
		return Snapshot{}, err
	}
	txns, err := s.Transactions()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Accounts: accounts, Events: events, Buckets: bkts, Transactions: txns}, nil
}

// SaveAccount inserts or replaces one account.
func (s *Store) SaveAccount(a model.Account) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO accounts (id, name, type, balance, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Type), a.Balance.String(), a.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving account %s: %w", a.ID, err)
	}
	return nil
}

// Accounts reads all accounts.
func (s *Store) Accounts() ([]model.Account, error) {
	rows, err := s.db.Query("SELECT id, name, type, balance, updated_at FROM accounts")
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		var balance, updated string
		if err := rows.Scan(&a.ID, &a.Name, (*string)(&a.Type), &balance, &updated); err != nil {
			return nil, err
		}
		a.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("account %s balance %q: %w", a.ID, balance, err)
		}
		a.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetBalance updates one account balance and its timestamp.
func (s *Store) SetBalance(accountID string, balance decimal.Decimal, at time.Time) error {
	res, err := s.db.Exec("UPDATE accounts SET balance = ?, updated_at = ? WHERE id = ?",
		balance.String(), at.UTC().Format(time.RFC3339), accountID)
	if err != nil {
		return fmt.Errorf("updating balance for %s: %w", accountID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("unknown account %q", accountID)
	}
	return nil
}

// SaveEvent inserts or replaces one calendar event.
func (s *Store) SaveEvent(e model.CalendarEvent) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO calendar_events
		(id, title, amount, date, kind, paid, deleted, recurring, frequency, parent_recurring_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Amount.String(), dates.Format(e.Date), string(e.Kind),
		boolToInt(e.Paid), boolToInt(e.Deleted), boolToInt(e.Recurring),
		string(e.Frequency), e.ParentRecurringID)
	if err != nil {
		return fmt.Errorf("saving event %s: %w", e.ID, err)
	}
	return nil
}

// Events reads all calendar events: templates, one-shots, and overrides.
func (s *Store) Events() ([]model.CalendarEvent, error) {
	rows, err := s.db.Query(`SELECT id, title, amount, date, kind, paid, deleted, recurring, frequency, parent_recurring_id
		FROM calendar_events`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.CalendarEvent
	for rows.Next() {
		var e model.CalendarEvent
		var amount, date string
		var paid, deleted, recurring int
		if err := rows.Scan(&e.ID, &e.Title, &amount, &date, (*string)(&e.Kind),
			&paid, &deleted, &recurring, (*string)(&e.Frequency), &e.ParentRecurringID); err != nil {
			return nil, err
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("event %s amount %q: %w", e.ID, amount, err)
		}
		e.Date, err = dates.Parse(date)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		e.Paid = paid != 0
		e.Deleted = deleted != 0
		e.Recurring = recurring != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// Event reads one calendar event by id.
func (s *Store) Event(eventID string) (model.CalendarEvent, error) {
	events, err := s.Events()
	if err != nil {
		return model.CalendarEvent{}, err
	}
	for _, e := range events {
		if e.ID == eventID {
			return e, nil
		}
	}
	return model.CalendarEvent{}, fmt.Errorf("unknown event %q", eventID)
}

// SaveBucket inserts or replaces one budget bucket.
func (s *Store) SaveBucket(b model.BudgetBucket) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO buckets (id, name, spend_limit, variable, core)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Limit.String(), boolToInt(b.Variable), boolToInt(b.Core))
	if err != nil {
		return fmt.Errorf("saving bucket %s: %w", b.ID, err)
	}
	return nil
}

// Buckets reads all budget buckets.
func (s *Store) Buckets() ([]model.BudgetBucket, error) {
	rows, err := s.db.Query("SELECT id, name, spend_limit, variable, core FROM buckets")
	if err != nil {
		return nil, fmt.Errorf("querying buckets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.BudgetBucket
	for rows.Next() {
		var b model.BudgetBucket
		var limit string
		var variable, core int
		if err := rows.Scan(&b.ID, &b.Name, &limit, &variable, &core); err != nil {
			return nil, err
		}
		b.Limit, err = decimal.NewFromString(limit)
		if err != nil {
			return nil, fmt.Errorf("bucket %s limit %q: %w", b.ID, limit, err)
		}
		b.Variable = variable != 0
		b.Core = core != 0
		out = append(out, b)
	}
	return out, rows.Err()
}

// SaveTransaction inserts or replaces one ledger transaction.
func (s *Store) SaveTransaction(t model.Transaction) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO transactions (id, amount, category, status, date, pay_period_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Amount.String(), t.Category, string(t.Status), dates.Format(t.Date), t.PayPeriodID)
	if err != nil {
		return fmt.Errorf("saving transaction %s: %w", t.ID, err)
	}
	return nil
}

// Transactions reads all ledger transactions.
func (s *Store) Transactions() ([]model.Transaction, error) {
	rows, err := s.db.Query("SELECT id, amount, category, status, date, pay_period_id FROM transactions")
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var amount, date string
		if err := rows.Scan(&t.ID, &amount, &t.Category, (*string)(&t.Status), &date, &t.PayPeriodID); err != nil {
			return nil, err
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s amount %q: %w", t.ID, amount, err)
		}
		t.Date, err = dates.Parse(date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
