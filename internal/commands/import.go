package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import bank transactions into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, args[0], format)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "household directory")
	cmd.Flags().StringVar(&format, "format", "generic", "CSV format")

	return cmd
}

func runImport(dir, file, format string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}
	defer e.close()

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}

	txns := importer.ToTransactions(rows, e.cfg.PeriodID())
	for _, txn := range txns {
		if err := e.st.SaveTransaction(txn); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"id":       txn.ID,
			"amount":   txn.Amount.String(),
			"category": txn.Category,
		}).Debug("imported transaction")
	}

	if err := logActivity(e.dir, "import", fmt.Sprintf("%d transactions from %s", len(txns), file), ""); err != nil {
		return err
	}
	fmt.Printf("Imported %d transactions\n", len(txns))
	return nil
}
