package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"kalinga-portal/app/config"
)

// Client wraps the Kratos public and admin API clients. The public API serves
// sign-in and session checks; the admin API serves identity provisioning and
// deletion.
type Client struct {
	publicAPI *kratosclient.APIClient
	adminAPI  *kratosclient.APIClient
	publicURL string
	adminURL  string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewClient creates a new Kratos client pair from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.KratosPublicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", cfg.KratosPublicURL)
	}
	if !isValidURL(cfg.KratosAdminURL) {
		return nil, fmt.Errorf("invalid Kratos admin URL: %s", cfg.KratosAdminURL)
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	publicConfig := kratosclient.NewConfiguration()
	publicConfig.Servers = []kratosclient.ServerConfiguration{
		{URL: cfg.KratosPublicURL},
	}
	publicConfig.HTTPClient = &http.Client{
		Timeout:   cfg.ProviderTimeout,
		Transport: transport,
	}

	adminConfig := kratosclient.NewConfiguration()
	adminConfig.Servers = []kratosclient.ServerConfiguration{
		{URL: cfg.KratosAdminURL},
	}
	adminConfig.HTTPClient = &http.Client{
		Timeout: cfg.ProviderTimeout,
	}

	logger.Info("kratos client initialized",
		"public_url", cfg.KratosPublicURL,
		"admin_url", cfg.KratosAdminURL,
		"timeout", cfg.ProviderTimeout)

	return &Client{
		publicAPI: kratosclient.NewAPIClient(publicConfig),
		adminAPI:  kratosclient.NewAPIClient(adminConfig),
		publicURL: cfg.KratosPublicURL,
		adminURL:  cfg.KratosAdminURL,
		timeout:   cfg.ProviderTimeout,
		logger:    logger,
	}, nil
}

// PublicAPI returns the public (frontend) API client.
func (c *Client) PublicAPI() *kratosclient.APIClient {
	return c.publicAPI
}

// AdminAPI returns the admin API client.
func (c *Client) AdminAPI() *kratosclient.APIClient {
	return c.adminAPI
}

// Timeout returns the bounded per-call timeout for provider operations.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// HealthCheck checks both Kratos API surfaces.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, response, err := c.publicAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos public API: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("kratos public API returned status %d", response.StatusCode)
	}

	_, response, err = c.adminAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos admin API: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("kratos admin API returned status %d", response.StatusCode)
	}

	return nil
}

func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
