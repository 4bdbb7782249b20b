package config

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	maxFeedSize   = 100
	maxWindowSize = 500
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.CMS.validate(); err != nil {
		return fmt.Errorf("cms: %w", err)
	}
	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RefreshPerMinute <= 0 {
		return fmt.Errorf("server.refresh_per_minute must be > 0 (got %d)", c.Server.RefreshPerMinute)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (c *CMSConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if strings.TrimSpace(c.APIToken) == "" {
		return fmt.Errorf("api_token is required")
	}
	if strings.TrimSpace(c.InternalDomain) == "" {
		return fmt.Errorf("internal_domain is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	return nil
}

func (a *ActivityConfig) validate() error {
	if a.FeedSize <= 0 || a.FeedSize > maxFeedSize {
		return fmt.Errorf("feed_size must be in 1..%d (got %d)", maxFeedSize, a.FeedSize)
	}
	if a.WindowSize <= 0 || a.WindowSize > maxWindowSize {
		return fmt.Errorf("window_size must be in 1..%d (got %d)", maxWindowSize, a.WindowSize)
	}

	a.Source = strings.ToLower(strings.TrimSpace(a.Source))
	switch a.Source {
	case SourceRecords, SourceAudit, SourceAuto:
	default:
		return fmt.Errorf("source must be one of records, audit, auto (got %q)", a.Source)
	}

	if a.RefreshTimeout <= 0 {
		return fmt.Errorf("refresh_timeout must be > 0 (got %v)", a.RefreshTimeout)
	}
	return nil
}
