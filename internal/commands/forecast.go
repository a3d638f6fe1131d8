package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/forecast"
	"github.com/spendwell-dev/spendwell/internal/model"
)

func newForecastCommand() *cobra.Command {
	var dir string
	var asOf string
	var days int
	var simulate []string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project the checking balance day by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForecast(dir, asOf, days, simulate)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&asOf, "as-of", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "horizon in days (default from config)")
	cmd.Flags().StringArrayVar(&simulate, "simulate", nil,
		"what-if transaction as DATE:AMOUNT:KIND[:TITLE], repeatable")

	return cmd
}

func runForecast(dir, asOf string, days int, simulate []string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	start, err := asOfDate(asOf)
	if err != nil {
		return err
	}
	if days <= 0 {
		days = e.cfg.Forecast.HorizonDays
	}

	sims, err := parseSimulated(simulate)
	if err != nil {
		return err
	}

	snap, err := e.st.Load()
	if err != nil {
		return err
	}

	projection := forecast.Project(snap.Accounts, snap.Events, sims, start, days)

	fmt.Printf("%-12s %12s %12s\n", "DATE", "LOW", "CLOSING")
	for _, d := range projection {
		marker := ""
		if d.Low.IsNegative() {
			marker = "  !"
		}
		fmt.Printf("%-12s %12s %12s%s\n",
			dates.Format(d.Date), d.Low.StringFixed(2), d.Closing.StringFixed(2), marker)
	}
	return nil
}

// parseSimulated parses --simulate values like "2024-03-12:500:expense:New Tires".
func parseSimulated(specs []string) ([]model.SimulatedTransaction, error) {
	var sims []model.SimulatedTransaction
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid --simulate value %q, want DATE:AMOUNT:KIND[:TITLE]", spec)
		}

		date, err := dates.Parse(parts[0])
		if err != nil {
			return nil, fmt.Errorf("--simulate %q: %w", spec, err)
		}
		amount, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("--simulate %q: parsing amount: %w", spec, err)
		}

		kind := model.EventKind(parts[2])
		if kind != model.KindExpense && kind != model.KindIncome {
			return nil, fmt.Errorf("--simulate %q: kind must be expense or income", spec)
		}

		title := "What-if"
		if len(parts) == 4 {
			title = parts[3]
		}

		sims = append(sims, model.SimulatedTransaction{
			ID:     uuid.NewString(),
			Title:  title,
			Amount: amount,
			Date:   date,
			Kind:   kind,
		})
	}
	return sims, nil
}
