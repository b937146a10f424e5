package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://localhost/applytrack")
	t.Setenv(EnvSessionKey, "secret")
	t.Setenv(EnvAddr, "")

	cfg := Load()
	assert.Equal(t, "postgres://localhost/applytrack", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.SessionKey)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsMissingVariables(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvSessionKey, "")

	err := Load().Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvDatabaseURL)
	assert.Contains(t, err.Error(), EnvSessionKey)

	t.Setenv(EnvDatabaseURL, "postgres://localhost/applytrack")
	err = Load().Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvSessionKey)
	assert.NotContains(t, err.Error(), EnvDatabaseURL)
}

func TestAddrOverride(t *testing.T) {
	t.Setenv(EnvAddr, ":9090")
	assert.Equal(t, ":9090", Load().Addr)
}
