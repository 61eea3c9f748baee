package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Storage backend selectors.
const (
	BackendSQLite         = "sqlite"
	BackendSheet          = "sheet"
	BackendSheetVersioned = "sheet-versioned"
)

// DefaultServices is the fixed service menu of the original deployment.
var DefaultServices = []string{"Corte", "Manicura", "Masajes", "Barba", "Otro"}

// Config holds every recognized setting. Values come from the environment
// (main loads .env first); the sheet settings are only required when a
// sheet backend is selected.
type Config struct {
	Addr          string `validate:"required"`
	BusinessName  string `validate:"required"`
	AccentColor   string `validate:"required,hexcolor"`
	AdminPassword string `validate:"required"`
	SessionSecret string `validate:"required,min=16"`
	Backend       string `validate:"required,oneof=sqlite sheet sheet-versioned"`

	SQLitePath string

	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string

	Services []string `validate:"required,min=1"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:            envOr("ADDR", ":6060"),
		BusinessName:    envOr("BUSINESS_NAME", "Lo del Fer"),
		AccentColor:     envOr("ACCENT_COLOR", "#E91E63"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		Backend:         envOr("STORE_BACKEND", BackendSQLite),
		SQLitePath:      envOr("SQLITE_PATH", "./database.db"),
		SpreadsheetID:   os.Getenv("SHEET_SPREADSHEET_ID"),
		SheetRange:      envOr("SHEET_RANGE", "A:E"),
		CredentialsFile: envOr("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		Services:        splitServices(os.Getenv("SERVICES")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Backend != BackendSQLite && cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEET_SPREADSHEET_ID is required for the %s backend", cfg.Backend)
	}

	return cfg, nil
}

// UsesSheet reports whether the configured backend talks to a spreadsheet.
func (c *Config) UsesSheet() bool {
	return c.Backend == BackendSheet || c.Backend == BackendSheetVersioned
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitServices(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return DefaultServices
	}

	var services []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return services
}
