package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/activitylog"
	"github.com/spendwell-dev/spendwell/internal/dates"
)

func newBillCommand() *cobra.Command {
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Act on one bill occurrence",
	}
	billCmd.AddCommand(newBillPayCommand(), newBillDeferCommand(), newBillDeleteCommand())
	return billCmd
}

func newBillPayCommand() *cobra.Command {
	var dir string
	var date string

	cmd := &cobra.Command{
		Use:   "pay <event-id>",
		Short: "Mark a bill occurrence paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillPay(dir, args[0], date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&date, "date", "", "occurrence date (YYYY-MM-DD, required for recurring bills)")

	return cmd
}

func runBillPay(dir, eventID, date string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	occDate, err := asOfDate(date)
	if err != nil {
		return err
	}

	writtenID, err := e.st.MarkBillPaid(eventID, occDate)
	if err != nil {
		return err
	}

	if err := logActivity(e.dir, "bill-paid", fmt.Sprintf("%s %s", eventID, dates.Format(occDate)), writtenID); err != nil {
		return err
	}
	fmt.Printf("Marked %s paid for %s\n", eventID, dates.Format(occDate))
	return nil
}

func newBillDeferCommand() *cobra.Command {
	var dir string
	var date string
	var to string

	cmd := &cobra.Command{
		Use:   "defer <event-id>",
		Short: "Push a bill occurrence to a later date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillDefer(dir, args[0], date, to)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&date, "date", "", "occurrence date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "new date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runBillDefer(dir, eventID, date, to string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	occDate, err := asOfDate(date)
	if err != nil {
		return err
	}
	newDate, err := dates.Parse(to)
	if err != nil {
		return err
	}

	newID, err := e.st.DeferBill(eventID, occDate, newDate)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("%s %s -> %s", eventID, dates.Format(occDate), dates.Format(newDate))
	if err := logActivity(e.dir, "bill-deferred", details, newID); err != nil {
		return err
	}
	fmt.Printf("Deferred %s to %s\n", eventID, dates.Format(newDate))
	return nil
}

func newBillDeleteCommand() *cobra.Command {
	var dir string
	var date string

	cmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Remove one bill occurrence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillDelete(dir, args[0], date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&date, "date", "", "occurrence date (YYYY-MM-DD)")

	return cmd
}

func runBillDelete(dir, eventID, date string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	occDate, err := asOfDate(date)
	if err != nil {
		return err
	}

	if err := e.st.DeleteOccurrence(eventID, occDate); err != nil {
		return err
	}

	if err := logActivity(e.dir, "bill-deleted", fmt.Sprintf("%s %s", eventID, dates.Format(occDate)), eventID); err != nil {
		return err
	}
	fmt.Printf("Removed %s occurrence on %s\n", eventID, dates.Format(occDate))
	return nil
}

func logActivity(dir, action, details, entityID string) error {
	return activitylog.Append(dir, []activitylog.Entry{{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
		EntityID:  entityID,
	}})
}
