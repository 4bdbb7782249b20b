package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CMS      CMSConfig      `yaml:"cms"`
	Activity ActivityConfig `yaml:"activity"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RefreshPerMinute caps manual refreshes per client IP.
	RefreshPerMinute int `yaml:"refresh_per_minute" env:"SERVER_REFRESH_PER_MINUTE" env-default:"6"`
}

// CMSConfig holds the content management API connection settings.
type CMSConfig struct {
	BaseURL  string `yaml:"base_url"  env:"CMS_BASE_URL"  env-default:"https://site-api.datocms.com"`
	APIToken string `yaml:"api_token" env:"CMS_API_TOKEN" env-required:"true"`
	// Environment selects a sandbox environment; empty means the primary one.
	Environment string `yaml:"environment" env:"CMS_ENVIRONMENT"`
	// InternalDomain is the tenant's admin domain used for editor deep links.
	InternalDomain string        `yaml:"internal_domain" env:"CMS_INTERNAL_DOMAIN" env-required:"true"`
	Timeout        time.Duration `yaml:"timeout"         env:"CMS_TIMEOUT"         env-default:"15s"`
}

// Activity sources.
const (
	SourceRecords = "records"
	SourceAudit   = "audit"
	SourceAuto    = "auto"
)

// ActivityConfig holds aggregation parameters.
type ActivityConfig struct {
	FeedSize   int    `yaml:"feed_size"   env:"ACTIVITY_FEED_SIZE"   env-default:"10"`
	WindowSize int    `yaml:"window_size" env:"ACTIVITY_WINDOW_SIZE" env-default:"10"`
	Source     string `yaml:"source"      env:"ACTIVITY_SOURCE"      env-default:"auto"`
	// SkipCollaboratorActivity turns off the per-user last update/publish lookups.
	SkipCollaboratorActivity bool          `yaml:"skip_collaborator_activity" env:"ACTIVITY_SKIP_COLLABORATOR_ACTIVITY"`
	RefreshTimeout           time.Duration `yaml:"refresh_timeout"            env:"ACTIVITY_REFRESH_TIMEOUT"            env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
