package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/model"
	"github.com/spendwell-dev/spendwell/internal/recur"
)

func newCalendarCommand() *cobra.Command {
	var dir string
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List effective bill and income occurrences in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(dir, from, to)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD, default end of start month)")

	return cmd
}

func runCalendar(dir, from, to string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	start, err := asOfDate(from)
	if err != nil {
		return err
	}
	end := dates.EndOfMonth(start)
	if to != "" {
		if end, err = dates.Parse(to); err != nil {
			return err
		}
	}

	events, err := e.st.Events()
	if err != nil {
		return err
	}

	occurrences := recur.Project(events, start, end)
	recur.SortByDate(occurrences)

	if len(occurrences) == 0 {
		fmt.Printf("Nothing scheduled between %s and %s\n", dates.Format(start), dates.Format(end))
		return nil
	}

	for _, occ := range occurrences {
		sign := "-"
		if occ.Kind == model.KindIncome {
			sign = "+"
		}
		status := ""
		if occ.Paid {
			status = "  (paid)"
		}
		fmt.Printf("%s  %s$%-10s %s%s\n",
			dates.Format(occ.Date), sign, occ.Amount.StringFixed(2), occ.Title, status)
	}
	return nil
}
