package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/buckets"
	"github.com/spendwell-dev/spendwell/internal/dates"
)

func newBucketsCommand() *cobra.Command {
	var dir string
	var drillDown string

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "Show per-bucket spending for the current period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuckets(dir, drillDown)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&drillDown, "bucket", "", "list the transactions behind one bucket")

	return cmd
}

func runBuckets(dir, drillDown string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	snap, err := e.st.Load()
	if err != nil {
		return err
	}
	periodID := e.cfg.PeriodID()

	if drillDown != "" {
		txns := buckets.TransactionsFor(drillDown, snap.Transactions, periodID)
		if len(txns) == 0 {
			fmt.Printf("No transactions for bucket %q this period\n", drillDown)
			return nil
		}
		for _, txn := range txns {
			fmt.Printf("%s  $%-10s %s\n", dates.Format(txn.Date), txn.Amount.StringFixed(2), txn.Status)
		}
		return nil
	}

	totals := buckets.Aggregate(snap.Buckets, snap.Transactions, periodID)
	fmt.Printf("%-20s %10s %10s %10s\n", "BUCKET", "LIMIT", "VERIFIED", "PENDING")
	for _, b := range snap.Buckets {
		t := totals[b.ID]
		fmt.Printf("%-20s %10s %10s %10s\n",
			b.Name, b.Limit.StringFixed(2), t.Verified.StringFixed(2), t.Pending.StringFixed(2))
	}
	return nil
}
