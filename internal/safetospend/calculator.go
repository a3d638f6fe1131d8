// Package safetospend derives the headline discretionary-liquidity
// number from account balances, projected bills, and bucket totals.
package safetospend

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/buckets"
	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
	"github.com/spendwell-dev/spendwell/internal/recur"
)

// Variant selects between the two formula generations. Both remain
// supported: households migrated at different times and the older
// bucket-liability math is still selectable per household.
type Variant string

const (
	// VariantBucketLiability deducts upcoming bills through month end
	// plus the unfilled portion of every bucket.
	VariantBucketLiability Variant = "bucket_liability"
	// VariantPaycheckWindow deducts only the unpaid bills due between
	// the last and next paycheck. Buckets become display-only.
	VariantPaycheckWindow Variant = "paycheck_window"
)

// paycheckLookaheadDays bounds the search for the next paycheck.
const paycheckLookaheadDays = 60

// Input is one immutable household snapshot plus the as-of date. The
// calculation never reads ambient time; callers pass the clock in.
type Input struct {
	Accounts     []model.Account
	Events       []model.CalendarEvent
	Buckets      []model.BudgetBucket
	Transactions []model.Transaction
	PeriodID     string // last approved paycheck date, empty = tracking off
	AsOf         time.Time
}

// Result carries the headline amount and the components it was derived
// from, for display alongside the number.
type Result struct {
	Amount            decimal.Decimal
	Checking          decimal.Decimal
	UnpaidBills       decimal.Decimal
	BucketLiabilities decimal.Decimal // bucket_liability variant only
	PendingSpend      decimal.Decimal // bucket_liability variant only
	WindowStart       time.Time       // paycheck_window variant only
	WindowEnd         time.Time       // paycheck_window variant only
}

// Calculate derives safe-to-spend for the snapshot under the given
// formula variant.
func Calculate(in Input, v Variant) (Result, error) {
	switch v {
	case VariantBucketLiability:
		return calculateBucketLiability(in), nil
	case VariantPaycheckWindow:
		return calculatePaycheckWindow(in)
	default:
		return Result{}, fmt.Errorf("unknown safe-to-spend variant %q", v)
	}
}

// CheckingBalance sums balances of checking accounts only. Savings and
// credit accounts never contribute to liquidity.
func CheckingBalance(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.Type == model.AccountTypeChecking {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// calculateBucketLiability implements
//
//	checking − (unpaidBillsThisMonth + max(0, bucketLiabilities − pendingSpend))
//
// Pending debits already left the checking balance, so they offset the
// bucket liability once instead of counting twice.
func calculateBucketLiability(in Input) Result {
	asOf := dates.Normalize(in.AsOf)
	checking := CheckingBalance(in.Accounts)
	bills := unpaidBillTotal(in.Events, in.Buckets, asOf, dates.EndOfMonth(asOf))

	liabilities := decimal.Zero
	totals := buckets.Aggregate(in.Buckets, in.Transactions, in.PeriodID)
	for _, b := range in.Buckets {
		remaining := b.Limit.Sub(totals[b.ID].Verified)
		if remaining.IsPositive() {
			liabilities = liabilities.Add(remaining)
		}
	}

	pending := buckets.PendingTotal(in.Transactions, in.PeriodID)
	netLiability := liabilities.Sub(pending)
	if netLiability.IsNegative() {
		netLiability = decimal.Zero
	}

	return Result{
		Amount:            checking.Sub(bills).Sub(netLiability),
		Checking:          checking,
		UnpaidBills:       bills,
		BucketLiabilities: liabilities,
		PendingSpend:      pending,
	}
}

// calculatePaycheckWindow implements checking − unpaidBillsBetweenPaychecks
// over the window (lastPaycheck, nextPaycheck]: start exclusive, end
// inclusive. Without a current period the answer is just the checking
// balance.
func calculatePaycheckWindow(in Input) (Result, error) {
	checking := CheckingBalance(in.Accounts)
	if in.PeriodID == "" {
		return Result{Amount: checking, Checking: checking}, nil
	}

	lastPaycheck, err := dates.Parse(in.PeriodID)
	if err != nil {
		return Result{}, fmt.Errorf("period id: %w", err)
	}

	windowEnd := nextPaycheckDate(in.Events, lastPaycheck)
	windowStart := dates.AddDays(lastPaycheck, 1)
	bills := unpaidBillTotal(in.Events, in.Buckets, windowStart, windowEnd)

	return Result{
		Amount:      checking.Sub(bills),
		Checking:    checking,
		UnpaidBills: bills,
		WindowStart: lastPaycheck,
		WindowEnd:   windowEnd,
	}, nil
}

// nextPaycheckDate finds the earliest unpaid income occurrence strictly
// after the last paycheck within the lookahead, falling back to the end
// of the last paycheck's month.
func nextPaycheckDate(events []model.CalendarEvent, lastPaycheck time.Time) time.Time {
	horizon := dates.AddDays(lastPaycheck, paycheckLookaheadDays)

	var next time.Time
	for _, occ := range recur.Project(events, lastPaycheck, horizon) {
		if occ.Kind != model.KindIncome || occ.Paid {
			continue
		}
		if !occ.Date.After(lastPaycheck) {
			continue
		}
		if next.IsZero() || occ.Date.Before(next) {
			next = occ.Date
		}
	}
	if next.IsZero() {
		return dates.EndOfMonth(lastPaycheck)
	}
	return next
}

// unpaidBillTotal sums projected expense occurrences in [from, to] that
// are unpaid and not covered by any bucket. Bucket-covered bills are
// excluded so bucket liabilities and bills never double count.
func unpaidBillTotal(events []model.CalendarEvent, bkts []model.BudgetBucket, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	if to.Before(from) {
		return total
	}
	for _, occ := range recur.Project(events, from, to) {
		if occ.Kind != model.KindExpense || occ.Paid {
			continue
		}
		if coveredByBucket(bkts, occ.Title) {
			continue
		}
		total = total.Add(occ.Amount)
	}
	return total
}

func coveredByBucket(bkts []model.BudgetBucket, billTitle string) bool {
	for _, b := range bkts {
		if buckets.MatchesBill(b.Name, billTitle) {
			return true
		}
	}
	return false
}
