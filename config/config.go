package config

import (
	"os"
)

// Config collects the environment-driven settings. Every field has a
// development default so the binary runs with no .env at all.
type Config struct {
	Port          string
	SQLitePath    string
	MySQLDSN      string
	AdminPassword string

	// Pairing suggestion collaborator. An empty key disables the
	// feature and callers get a localized fallback string.
	PairingAPIKey  string
	PairingBaseURL string
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		SQLitePath:     getEnv("STORE_DB_PATH", "astren.db"),
		MySQLDSN:       os.Getenv("DB_DSN"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "150150"),
		PairingAPIKey:  os.Getenv("PAIRING_API_KEY"),
		PairingBaseURL: getEnv("PAIRING_BASE_URL", "https://generativelanguage.googleapis.com"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
