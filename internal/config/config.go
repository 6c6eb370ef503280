package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/hashicorp/go-multierror"
)

// Environment variables with defaults
type ClientEnvironment struct {

	// general settings
	Environment string `env:"ENVIRONMENT,default=dev"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// API settings
	APIToken string `env:"RIGHTSIGNATURE_API_TOKEN,required=true"`
	BaseURL  string `env:"RIGHTSIGNATURE_BASE_URL,default=https://rightsignature.com/api/"`

	// HTTPTimeout of 0 leaves the http.Client default (no timeout)
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=0s"`

	// client-side throttling (0 disables it)
	RateLimitRPS   int32 `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst int32 `env:"RATE_LIMIT_BURST,default=1"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// NewClientConfig loads environment variables and returns a ClientEnvironment struct that contains the values
func NewClientConfig() (*ClientEnvironment, error) {
	var cfg ClientEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateConfig reports every invalid setting at once
func validateConfig(cfg *ClientEnvironment) error {
	var result *multierror.Error

	if !validEnvs[cfg.Environment] {
		result = multierror.Append(result, fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment))
	}

	if strings.TrimSpace(cfg.APIToken) == "" {
		result = multierror.Append(result, fmt.Errorf("RIGHTSIGNATURE_API_TOKEN must not be blank"))
	}

	u, err := url.Parse(cfg.BaseURL)
	switch {
	case err != nil:
		result = multierror.Append(result, fmt.Errorf("invalid RIGHTSIGNATURE_BASE_URL: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		result = multierror.Append(result, fmt.Errorf("RIGHTSIGNATURE_BASE_URL must be an http(s) URL, got %q", cfg.BaseURL))
	case !strings.HasSuffix(cfg.BaseURL, "/"):
		result = multierror.Append(result, fmt.Errorf("RIGHTSIGNATURE_BASE_URL must end with a slash, got %q", cfg.BaseURL))
	}

	if cfg.HTTPTimeout < 0 {
		result = multierror.Append(result, fmt.Errorf("HTTP_TIMEOUT must be 0 or greater"))
	}

	if cfg.RateLimitRPS < 0 {
		result = multierror.Append(result, fmt.Errorf("RATE_LIMIT_RPS must be 0 or greater"))
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		result = multierror.Append(result, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled, got %d", cfg.RateLimitBurst))
	}

	return result.ErrorOrNil()
}
