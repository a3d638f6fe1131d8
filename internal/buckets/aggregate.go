// Package buckets aggregates ledger transactions into per-category
// spending totals and answers bucket/bill coverage questions.
package buckets

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/model"
)

// Totals holds the accumulated spend for one bucket within a period,
// rounded to 2 decimal places.
type Totals struct {
	Verified decimal.Decimal
	Pending  decimal.Decimal
}

// Aggregate sums period-scoped transactions into their buckets.
//
// A transaction joins at most one bucket, by exact case-insensitive
// name equality against its category. Uncategorized and unmatched
// transactions are ignored, as are statuses other than verified and
// pending_review. Every bucket appears in the result, zero-valued when
// nothing matched. An empty periodID disables period filtering.
func Aggregate(bkts []model.BudgetBucket, txns []model.Transaction, periodID string) map[string]Totals {
	byName := make(map[string]string, len(bkts)) // folded name -> bucket id
	acc := make(map[string]*Totals, len(bkts))
	for _, b := range bkts {
		byName[strings.ToLower(b.Name)] = b.ID
		acc[b.ID] = &Totals{Verified: decimal.Zero, Pending: decimal.Zero}
	}

	for _, txn := range txns {
		if !inPeriod(txn, periodID) || txn.Category == "" {
			continue
		}
		bucketID, ok := byName[strings.ToLower(txn.Category)]
		if !ok {
			continue
		}
		switch txn.Status {
		case model.StatusVerified:
			acc[bucketID].Verified = acc[bucketID].Verified.Add(txn.Amount)
		case model.StatusPendingReview:
			acc[bucketID].Pending = acc[bucketID].Pending.Add(txn.Amount)
		}
	}

	out := make(map[string]Totals, len(acc))
	for bucketID, t := range acc {
		out[bucketID] = Totals{
			Verified: t.Verified.Round(2),
			Pending:  t.Pending.Round(2),
		}
	}
	return out
}

// TransactionsFor returns the period-scoped transactions matching one
// bucket name, newest first. Drill-down display data, not used by
// Aggregate.
func TransactionsFor(bucketName string, txns []model.Transaction, periodID string) []model.Transaction {
	folded := strings.ToLower(bucketName)

	var out []model.Transaction
	for _, txn := range txns {
		if !inPeriod(txn, periodID) || txn.Category == "" {
			continue
		}
		if strings.ToLower(txn.Category) == folded {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// PendingTotal sums pending-review transaction amounts in the period.
func PendingTotal(txns []model.Transaction, periodID string) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if inPeriod(txn, periodID) && txn.Status == model.StatusPendingReview {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// MatchesBill reports whether a bucket covers a bill title. Coverage is
// fuzzy on purpose: case-insensitive substring containment in either
// direction, unlike Aggregate's exact category matching.
func MatchesBill(bucketName, billTitle string) bool {
	if bucketName == "" || billTitle == "" {
		return false
	}
	b := strings.ToLower(bucketName)
	t := strings.ToLower(billTitle)
	return strings.Contains(b, t) || strings.Contains(t, b)
}

// inPeriod applies the two-mode period scoping: an empty periodID means
// paycheck tracking is off and every transaction is current.
func inPeriod(txn model.Transaction, periodID string) bool {
	return periodID == "" || txn.PayPeriodID == periodID
}
