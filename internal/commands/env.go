package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/spendwell-dev/spendwell/internal/config"
	"github.com/spendwell-dev/spendwell/internal/dates"
	"github.com/spendwell-dev/spendwell/internal/store"
)

// configFile is the household configuration file name.
const configFile = "spendwell.yaml"

// env bundles the loaded config and open store for one command run.
type env struct {
	dir string
	cfg *config.Config
	st  *store.Store
}

func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, err
	}

	dbPath := cfg.Data.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(absDir, dbPath)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"household": cfg.Household.Name,
		"db":        dbPath,
	}).Debug("opened household store")

	return &env{dir: absDir, cfg: cfg, st: st}, nil
}

func (e *env) close() {
	if err := e.st.Close(); err != nil {
		logrus.WithError(err).Warn("closing household store")
	}
}

// asOfDate resolves the --as-of flag. The CLI boundary is the one place
// ambient time is read; everything below takes the date explicitly.
func asOfDate(flag string) (time.Time, error) {
	if flag == "" {
		return dates.Normalize(time.Now().UTC()), nil
	}
	return dates.Parse(flag)
}
