package model

import "github.com/shopspring/decimal"

// BudgetBucket is a named spending category with a per-period cap.
// Name doubles as the match key against transaction categories and
// bill titles.
type BudgetBucket struct {
	ID       string
	Name     string
	Limit    decimal.Decimal
	Variable bool // spending fluctuates period to period
	Core     bool // essential, not discretionary
}
