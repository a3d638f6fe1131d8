package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendwell-dev/spendwell/internal/activitylog"
	"github.com/spendwell-dev/spendwell/internal/config"
	"github.com/spendwell-dev/spendwell/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new spendwell household",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "household name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", configFile, dir)
	}

	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the database so the schema exists before the first command.
	st, err := store.Open(filepath.Join(dir, cfg.Data.Path))
	if err != nil {
		return err
	}
	if err := st.Close(); err != nil {
		return err
	}

	if err := activitylog.Append(dir, []activitylog.Entry{{
		Timestamp: time.Now().UTC(),
		Action:    "init",
		Details:   name,
	}}); err != nil {
		return err
	}

	fmt.Printf("Initialized spendwell household %q in %s\n", name, dir)
	return nil
}
