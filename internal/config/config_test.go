package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spendwell.yaml")

	cfg := Default("Test Household")
	cfg.Formula.CurrentPeriod = "2024-03-01"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Household", loaded.Household.Name)
	assert.Equal(t, "paycheck_window", loaded.Formula.Variant)
	assert.Equal(t, 30, loaded.Forecast.HorizonDays)
	assert.Equal(t, "2024-03-01", loaded.PeriodID())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestPeriodID_TrackingDisabled(t *testing.T) {
	cfg := Default("H")
	cfg.Formula.PaycheckTracking = false
	cfg.Formula.CurrentPeriod = "2024-03-01"

	assert.Equal(t, "", cfg.PeriodID(), "tracking off means everything is in scope")
}
