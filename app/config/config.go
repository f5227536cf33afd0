package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the portal account service.
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Profile store
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Identity provider
	KratosPublicURL string        `yaml:"kratos_public_url"`
	KratosAdminURL  string        `yaml:"kratos_admin_url"`
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	// Administrator credential. Absence is not a startup error: admin sign-in
	// reports a server-configuration failure instead of a silent default.
	AdminEmail    string `yaml:"-"`
	AdminPassword string `yaml:"-"`
	AdminName     string `yaml:"admin_name"`

	// Stakeholder self-registration is restricted to this institutional
	// domain. Emails containing the bare marker are also accepted.
	AllowedEmailDomain string `yaml:"allowed_email_domain"`
}

// Load reads configuration from the environment, applying overrides from an
// optional YAML file named by CONFIG_FILE.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnvOrDefault("PORT", "9600"),
		Host:     getEnvOrDefault("HOST", "0.0.0.0"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),

		DatabaseHost:     getEnvOrDefault("DB_HOST", "portal-postgres"),
		DatabasePort:     getEnvOrDefault("DB_PORT", "5432"),
		DatabaseName:     getEnvOrDefault("DB_NAME", "portal_db"),
		DatabaseUser:     getEnvOrDefault("DB_USER", "portal_user"),
		DatabasePassword: os.Getenv("DB_PASSWORD"),
		DatabaseSSLMode:  getEnvOrDefault("DB_SSL_MODE", "require"),

		KratosPublicURL: os.Getenv("KRATOS_PUBLIC_URL"),
		KratosAdminURL:  os.Getenv("KRATOS_ADMIN_URL"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnvOrDefault("ADMIN_NAME", "Administrator"),

		AllowedEmailDomain: getEnvOrDefault("ALLOWED_EMAIL_DOMAIN", "dlsl.edu.ph"),
	}

	timeoutStr := getEnvOrDefault("PROVIDER_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.ProviderTimeout = timeout

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := cfg.applyFile(file); err != nil {
			return nil, fmt.Errorf("failed to apply config file: %w", err)
		}
	}

	if cfg.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}
	if cfg.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.ProviderTimeout < time.Second {
		return fmt.Errorf("provider timeout must be at least 1 second, got: %v", c.ProviderTimeout)
	}

	if c.AllowedEmailDomain == "" {
		return fmt.Errorf("allowed email domain must not be empty")
	}

	return nil
}

// AdminConfigured reports whether the static administrator credential is
// present. Both fields must be set for the administrator path to work.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// Production reports whether the service runs with production hardening
// (secure cookies, JSON logs).
func (c *Config) Production() bool {
	env := strings.ToLower(os.Getenv("GO_ENV"))
	return env == "production" || env == "prod"
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	overrides := &Config{}
	if err := yaml.Unmarshal(data, overrides); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	applyString(&c.Port, overrides.Port)
	applyString(&c.Host, overrides.Host)
	applyString(&c.LogLevel, overrides.LogLevel)
	applyString(&c.DatabaseHost, overrides.DatabaseHost)
	applyString(&c.DatabasePort, overrides.DatabasePort)
	applyString(&c.DatabaseName, overrides.DatabaseName)
	applyString(&c.DatabaseUser, overrides.DatabaseUser)
	applyString(&c.DatabaseSSLMode, overrides.DatabaseSSLMode)
	applyString(&c.KratosPublicURL, overrides.KratosPublicURL)
	applyString(&c.KratosAdminURL, overrides.KratosAdminURL)
	applyString(&c.AdminName, overrides.AdminName)
	applyString(&c.AllowedEmailDomain, overrides.AllowedEmailDomain)
	if overrides.ProviderTimeout > 0 {
		c.ProviderTimeout = overrides.ProviderTimeout
	}

	return nil
}

func applyString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
