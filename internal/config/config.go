// Package config loads the layered application settings: built-in
// defaults, base YAML files from a settings directory, per-environment
// overrides, then APP__-prefixed environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Application ApplicationConfig `yaml:"application"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// ApplicationConfig holds HTTP server and application identity settings.
type ApplicationConfig struct {
	Host            string          `yaml:"host"             env:"APP__APPLICATION__HOST"           validate:"required"`
	Port            int             `yaml:"port"             env:"APP__APPLICATION__PORT"           validate:"gte=0,lte=65535"`
	BaseURL         string          `yaml:"base_url"         env:"APP__APPLICATION__BASE_URL"       validate:"omitempty,url"`
	Environment     string          `yaml:"environment"      env:"APP__APPLICATION__ENVIRONMENT"`
	Version         string          `yaml:"version"          env:"APP__APPLICATION__VERSION"`
	Name            string          `yaml:"name"             env:"APP__APPLICATION__NAME"           validate:"required"`
	CSRFSecret      Secret          `yaml:"csrf_secret"      env:"APP__APPLICATION__CSRF_SECRET"    validate:"required,min=32"`
	CSRFTokenTTL    time.Duration   `yaml:"csrf_token_ttl"   env:"APP__APPLICATION__CSRF_TOKEN_TTL"`
	MaxBodyBytes    int64           `yaml:"max_body_bytes"   env:"APP__APPLICATION__MAX_BODY_BYTES" validate:"gt=0"`
	ReadTimeout     time.Duration   `yaml:"read_timeout"     env:"APP__APPLICATION__READ_TIMEOUT"`
	WriteTimeout    time.Duration   `yaml:"write_timeout"    env:"APP__APPLICATION__WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" env:"APP__APPLICATION__SHUTDOWN_TIMEOUT"`
	RequestTimeout  time.Duration   `yaml:"request_timeout"  env:"APP__APPLICATION__REQUEST_TIMEOUT"`
	CSPReportOnly   bool            `yaml:"csp_report_only"  env:"APP__APPLICATION__CSP_REPORT_ONLY"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// Address is host:port for the listener.
func (a ApplicationConfig) Address() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// RateLimitConfig is a token bucket applied to the /api tree.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"             env:"APP__APPLICATION__RATE_LIMIT__ENABLED"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"APP__APPLICATION__RATE_LIMIT__REQUESTS_PER_SECOND" validate:"gt=0"`
	Burst             int     `yaml:"burst"               env:"APP__APPLICATION__RATE_LIMIT__BURST"               validate:"gt=0"`
	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// believed. Empty means the peer address is always the client.
	TrustedProxies []string `yaml:"trusted_proxies" env:"APP__APPLICATION__RATE_LIMIT__TRUSTED_PROXIES" env-separator:","`
}

// DatabaseConfig selects and configures the relational store.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"APP__DATABASE__DRIVER"         validate:"oneof=postgres sqlite"`
	Host            string        `yaml:"host"               env:"APP__DATABASE__HOST"`
	Port            int           `yaml:"port"               env:"APP__DATABASE__PORT"           validate:"gte=0,lte=65535"`
	Username        string        `yaml:"username"           env:"APP__DATABASE__USERNAME"`
	Password        Secret        `yaml:"password"           env:"APP__DATABASE__PASSWORD"`
	Name            string        `yaml:"db_name"            env:"APP__DATABASE__DB_NAME"`
	RequireSSL      bool          `yaml:"require_ssl"        env:"APP__DATABASE__REQUIRE_SSL"`
	Path            string        `yaml:"path"               env:"APP__DATABASE__PATH"`
	MaxOpenConns    int           `yaml:"max_open_conns"     env:"APP__DATABASE__MAX_OPEN_CONNS" validate:"gt=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns"     env:"APP__DATABASE__MAX_IDLE_CONNS" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"  env:"APP__DATABASE__CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"APP__DATABASE__CONN_MAX_IDLE_TIME"`
}

// DSN returns the postgres connection URL. sslmode is require when
// RequireSSL is set and prefer otherwise.
func (d DatabaseConfig) DSN() string {
	sslMode := "prefer"
	if d.RequireSSL {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.Username, d.Password.Expose()),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"APP__LOG__LEVEL"  validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" env:"APP__LOG__FORMAT" validate:"oneof=json text"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	ServiceName string  `yaml:"service_name" env:"APP__TELEMETRY__SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" env:"APP__TELEMETRY__SAMPLE_RATIO" validate:"gte=0,lte=1"`
}

// Secret is a string that is never printed or logged.
type Secret string

func (s Secret) Expose() string { return string(s) }

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

func (s Secret) LogValue() slog.Value { return slog.StringValue(s.String()) }

// LogValue summarizes the configuration without secrets.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Application.Name),
		slog.String("version", c.Application.Version),
		slog.String("environment", c.Application.Environment),
		slog.String("address", c.Application.Address()),
		slog.String("database_driver", c.Database.Driver),
		slog.String("log_level", c.Log.Level),
	)
}

func (c *Config) String() string {
	return fmt.Sprintf("%s %s (%s) on %s", c.Application.Name, c.Application.Version,
		c.Application.Environment, c.Application.Address())
}
