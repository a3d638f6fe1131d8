package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a household account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// Account is a point-in-time balance snapshot for one account.
// The calculation layer never mutates accounts; balance changes happen
// in the store and arrive here as a fresh snapshot.
type Account struct {
	ID        string
	Name      string
	Type      AccountType
	Balance   decimal.Decimal // signed; credit accounts carry what is owed
	UpdatedAt time.Time
}
