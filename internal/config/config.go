package config

import (
	"fmt"
	"os"
)

// Environment variables the server reads. DatabaseURL and SessionKey are
// required; their absence is reported as a misconfiguration on each API
// call rather than crashing the process at boot.
const (
	EnvDatabaseURL = "APPLYTRACK_DATABASE_URL"
	EnvSessionKey  = "APPLYTRACK_SESSION_KEY"
	EnvAddr        = "APPLYTRACK_ADDR"
)

const defaultAddr = ":8080"

type Config struct {
	DatabaseURL string
	SessionKey  string
	Addr        string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first if a .env file should be honored.
func Load() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		SessionKey:  os.Getenv(EnvSessionKey),
		Addr:        os.Getenv(EnvAddr),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	return cfg
}

// Validate reports which required values are missing.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, EnvDatabaseURL)
	}
	if c.SessionKey == "" {
		missing = append(missing, EnvSessionKey)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}
