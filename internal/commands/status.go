package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/safetospend"
)

func newStatusCommand() *cobra.Command {
	var dir string
	var asOf string
	var variant string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show safe-to-spend for the household",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(dir, asOf, variant)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&asOf, "as-of", "", "calculation date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&variant, "variant", "", "formula variant override (paycheck_window or bucket_liability)")

	return cmd
}

func runStatus(dir, asOf, variantFlag string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	day, err := asOfDate(asOf)
	if err != nil {
		return err
	}

	snap, err := e.st.Load()
	if err != nil {
		return err
	}

	variant := safetospend.Variant(e.cfg.Formula.Variant)
	if variantFlag != "" {
		variant = safetospend.Variant(variantFlag)
	}

	logrus.WithFields(logrus.Fields{
		"variant": variant,
		"as_of":   dates.Format(day),
		"period":  e.cfg.PeriodID(),
	}).Debug("calculating safe to spend")

	res, err := safetospend.Calculate(safetospend.Input{
		Accounts:     snap.Accounts,
		Events:       snap.Events,
		Buckets:      snap.Buckets,
		Transactions: snap.Transactions,
		PeriodID:     e.cfg.PeriodID(),
		AsOf:         day,
	}, variant)
	if err != nil {
		return err
	}

	fmt.Printf("Safe to spend: $%s\n", res.Amount.StringFixed(2))
	fmt.Printf("  Checking balance:  $%s\n", res.Checking.StringFixed(2))
	fmt.Printf("  Unpaid bills:      $%s\n", res.UnpaidBills.StringFixed(2))
	if variant == safetospend.VariantBucketLiability {
		fmt.Printf("  Bucket liability:  $%s\n", res.BucketLiabilities.StringFixed(2))
		fmt.Printf("  Pending spend:     $%s\n", res.PendingSpend.StringFixed(2))
	} else if !res.WindowEnd.IsZero() {
		fmt.Printf("  Bill window:       %s (exclusive) to %s (inclusive)\n",
			dates.Format(res.WindowStart), dates.Format(res.WindowEnd))
	}
	return nil
}
