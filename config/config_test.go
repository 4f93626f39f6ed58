package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Local, cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "9090", cfg.App.MetricsPort)
	assert.False(t, cfg.Portfolio.ResetFiltersOnTabSwitch)
	assert.False(t, cfg.Database.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORTFOLIO_RESET_FILTERS_ON_TAB_SWITCH", "true")
	t.Setenv("DB_USERNAME", "site")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_ENDPOINT", "db:5432")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.App.Env)
	assert.True(t, cfg.Portfolio.ResetFiltersOnTabSwitch)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "postgres://site:secret@db:5432/portfolio?sslmode=disable", cfg.Database.ConnectionString())
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	require.Error(t, err)
}
