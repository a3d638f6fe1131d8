// Package forecast walks a checking balance forward day by day,
// applying projected bills, income, and what-if transactions.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
	"github.com/spendwell-dev/spendwell/internal/recur"
	"github.com/spendwell-dev/spendwell/internal/safetospend"
)

// Day is one forecast entry: the balance at end of day and the lowest
// point reached during it.
type Day struct {
	Date    time.Time
	Closing decimal.Decimal
	Low     decimal.Decimal
}

// Project produces horizonDays+1 entries from start (inclusive); a
// negative horizon is treated as zero. The starting balance is checking
// accounts only, matching the safe-to-spend asset definition.
//
// Within a day, every expense is applied before any income, so Low is
// the pessimistic intra-day dip: the bill can clear before the deposit
// lands. Paid calendar events are assumed already reflected in the
// starting balance and skipped; simulated transactions always apply.
func Project(accounts []model.Account, events []model.CalendarEvent, sims []model.SimulatedTransaction, start time.Time, horizonDays int) []Day {
	if horizonDays < 0 {
		horizonDays = 0
	}
	start = dates.Normalize(start)
	end := dates.AddDays(start, horizonDays)

	type flows struct {
		expense decimal.Decimal
		income  decimal.Decimal
	}
	byDay := make(map[string]*flows)
	dayFlows := func(d time.Time) *flows {
		key := dates.Format(d)
		f, ok := byDay[key]
		if !ok {
			f = &flows{expense: decimal.Zero, income: decimal.Zero}
			byDay[key] = f
		}
		return f
	}

	for _, occ := range recur.Project(events, start, end) {
		if occ.Paid {
			continue
		}
		f := dayFlows(dates.Normalize(occ.Date))
		if occ.Kind == model.KindExpense {
			f.expense = f.expense.Add(occ.Amount)
		} else {
			f.income = f.income.Add(occ.Amount)
		}
	}

	for _, sim := range sims {
		d := dates.Normalize(sim.Date)
		if !dates.InRange(d, start, end) {
			continue
		}
		f := dayFlows(d)
		if sim.Kind == model.KindExpense {
			f.expense = f.expense.Add(sim.Amount)
		} else {
			f.income = f.income.Add(sim.Amount)
		}
	}

	balance := safetospend.CheckingBalance(accounts)
	out := make([]Day, 0, horizonDays+1)
	for offset := 0; offset <= horizonDays; offset++ {
		d := dates.AddDays(start, offset)
		low := balance
		if f, ok := byDay[dates.Format(d)]; ok {
			balance = balance.Sub(f.expense)
			low = balance
			balance = balance.Add(f.income)
		}
		out = append(out, Day{Date: d, Closing: balance, Low: low})
	}
	return out
}
