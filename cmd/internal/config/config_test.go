package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_PASSWORD", "admin2024")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.Addr)
	assert.Equal(t, "Lo del Fer", cfg.BusinessName)
	assert.Equal(t, "#E91E63", cfg.AccentColor)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, DefaultServices, cfg.Services)
	assert.False(t, cfg.UsesSheet())
}

func TestLoadMissingPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadShortSessionSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin2024")
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSheetBackendNeedsSpreadsheet(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "sheet")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SHEET_SPREADSHEET_ID", "1abcDEF")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesSheet())
	assert.Equal(t, "A:E", cfg.SheetRange)
}

func TestLoadUnknownBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "dynamodb")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCustomServices(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVICES", "Corte, Color ,,Peinado")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Corte", "Color", "Peinado"}, cfg.Services)
}
