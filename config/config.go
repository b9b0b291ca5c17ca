package config

import "os"

// DefaultDBPath is the single-file store created next to the executable
// when no override is configured.
const DefaultDBPath = "dental_clinic.db"

// AppConfig holds the application configuration
type AppConfig struct {
	DBPath string
	Env    string
}

// Load reads configuration from environment variables, applying defaults
// suitable for a fresh install.
func Load() *AppConfig {
	dbPath := os.Getenv("CLINIC_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	return &AppConfig{
		DBPath: dbPath,
		Env:    os.Getenv("ENV"),
	}
}

// IsDevelopment reports whether verbose logging should be enabled.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
