package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("KRATOS_PUBLIC_URL", "http://kratos-public:4433")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos-admin:4434")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9600", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "dlsl.edu.ph", cfg.AllowedEmailDomain)
	assert.Equal(t, "Administrator", cfg.AdminName)
	assert.False(t, cfg.AdminConfigured())
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "db password", unset: "DB_PASSWORD"},
		{name: "kratos public url", unset: "KRATOS_PUBLIC_URL"},
		{name: "kratos admin url", unset: "KRATOS_ADMIN_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAdminConfigured(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_EMAIL", "admin@dlsl.edu.ph")
	t.Setenv("ADMIN_PASSWORD", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AdminConfigured())
}

func TestAdminPartiallyConfigured(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_EMAIL", "admin@dlsl.edu.ph")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.AdminConfigured())
}

func TestProviderTimeoutBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PROVIDER_TIMEOUT", "100ms")

	_, err := Load()
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigFileOverride(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := "port: \"8080\"\nlog_level: debug\nallowed_email_domain: example.edu\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", file)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "example.edu", cfg.AllowedEmailDomain)
	// Environment values the file does not name are untouched.
	assert.Equal(t, "test-password", cfg.DatabasePassword)
}
