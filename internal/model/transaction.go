package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the review state of a ledger transaction.
type TransactionStatus string

const (
	StatusVerified      TransactionStatus = "verified"
	StatusPendingReview TransactionStatus = "pending_review"
)

// Transaction is one spending record in the household ledger.
// Amount is a non-negative magnitude. Category is free text; empty means
// uncategorized. PayPeriodID is the paycheck date string that opened the
// period the transaction belongs to, or empty when period tracking is off.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Category    string
	Status      TransactionStatus
	Date        time.Time
	PayPeriodID string
}
