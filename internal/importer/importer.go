// Package importer parses bank CSV exports into ledger transactions.
package importer

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/model"
)

// Row is one parsed bank CSV line before it becomes a ledger record.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // non-negative magnitude
	Category    string
}

// Parser converts a bank CSV file into rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}

// ToTransactions turns parsed rows into ledger transactions stamped
// with the current period. New imports land as pending_review until
// the household verifies them.
func ToTransactions(rows []Row, periodID string) []model.Transaction {
	out := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Transaction{
			ID:          uuid.NewString(),
			Amount:      row.Amount,
			Category:    row.Category,
			Status:      model.StatusPendingReview,
			Date:        row.Date,
			PayPeriodID: periodID,
		})
	}
	return out
}
