package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/florianilch/zoom-mcp/internal/credentials"
	"github.com/florianilch/zoom-mcp/internal/observability"
	"github.com/florianilch/zoom-mcp/internal/server"
	"github.com/florianilch/zoom-mcp/internal/tokensource"
	"github.com/florianilch/zoom-mcp/internal/zoomapi"
)

// LogFormat represents the logging output format.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// CredentialsStorageType selects where Zoom app credentials are read from.
type CredentialsStorageType string

const (
	CredentialsStorageEnv     CredentialsStorageType = "env"
	CredentialsStorageFile    CredentialsStorageType = "file"
	CredentialsStorageKeyring CredentialsStorageType = "keyring"
)

// Default configuration values
const (
	DefaultConfigLogFormat          = LogFormatText
	DefaultConfigTelemetryExporter  = observability.ExporterNone
	DefaultConfigServerTransport    = server.TransportStdio
	DefaultConfigServerHost         = "127.0.0.1"
	DefaultConfigServerPort         = 8080
	DefaultConfigShutdownTimeout    = 5 * time.Second
	DefaultConfigUpstreamBaseURL    = zoomapi.DefaultBaseURL
	DefaultConfigUpstreamTokenURL   = tokensource.TokenURL
	DefaultConfigUpstreamTimeout    = 30 * time.Second
	DefaultConfigCredentialsStorage = CredentialsStorageEnv
)

// TelemetryConfig holds OpenTelemetry log export settings.
type TelemetryConfig struct {
	Exporter observability.Exporter `json:"exporter" validate:"oneof=none stdout otlp-grpc otlp-http"`
}

// ServerConfig holds MCP transport settings. Host and port only apply to the
// http and sse transports.
type ServerConfig struct {
	Transport server.Transport `json:"transport" validate:"oneof=stdio http sse"`
	Host      string           `json:"host" validate:"hostname_rfc1123|ip"`
	Port      uint16           `json:"port"` // Port range 0-65535 handled by uint16 type
}

// MetricsConfig controls Prometheus metrics, served on /metrics by the http
// and sse transports.
type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}

// ShutdownConfig holds shutdown behavior configuration.
type ShutdownConfig struct {
	// Timeout for graceful shutdown.
	Timeout time.Duration `json:"timeout"`
}

// UpstreamConfig holds Zoom endpoint configuration.
type UpstreamConfig struct {
	BaseURL  string `json:"base_url" validate:"required,url"`
	TokenURL string `json:"token_url" validate:"required,url"`
	// Timeout bounds each API call including token acquisition.
	// Zero selects the 30s default; the limit cannot be disabled.
	Timeout time.Duration `json:"timeout" validate:"gte=0"`
}

// CredentialsConfig describes where the Server-to-Server OAuth app credentials live.
type CredentialsConfig struct {
	Storage CredentialsStorageType `json:"storage" validate:"required,oneof=env file keyring"`

	File        string `json:"file,omitempty"`         // For file storage: path to the credentials file
	KeyringUser string `json:"keyring_user,omitempty"` // For keyring storage: user identifier
}

// NewStore creates the credentials Store described by the configuration.
func (c *CredentialsConfig) NewStore() (credentials.Store, error) {
	switch c.Storage {
	case CredentialsStorageEnv:
		return credentials.NewEnvStore(), nil
	case CredentialsStorageFile:
		return credentials.NewFileStore(c.File)
	case CredentialsStorageKeyring:
		return credentials.NewKeyringStore(credentials.KeyringService, c.KeyringUser)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", c.Storage)
	}
}

// Config holds the application's configuration.
type Config struct {
	// LogLevel for logging output (defaults to Info if unset).
	LogLevel    slog.Level        `json:"log_level"`
	LogFormat   LogFormat         `json:"log_format" validate:"oneof=text json"`
	Telemetry   TelemetryConfig   `json:"telemetry"`
	Server      ServerConfig      `json:"server"`
	Metrics     MetricsConfig     `json:"metrics"`
	Shutdown    ShutdownConfig    `json:"shutdown"`
	Upstream    UpstreamConfig    `json:"upstream"`
	Credentials CredentialsConfig `json:"credentials"`
}

// Default creates a new Config with default values applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills unset config fields with sensible defaults.
func (c *Config) ApplyDefaults() error {
	if c.LogFormat == "" {
		c.LogFormat = DefaultConfigLogFormat
	}
	if c.Telemetry.Exporter == "" {
		c.Telemetry.Exporter = DefaultConfigTelemetryExporter
	}
	if c.Server.Transport == "" {
		c.Server.Transport = DefaultConfigServerTransport
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultConfigServerHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultConfigServerPort
	}
	if c.Shutdown.Timeout == 0 {
		c.Shutdown.Timeout = DefaultConfigShutdownTimeout
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultConfigUpstreamBaseURL
	}
	if c.Upstream.TokenURL == "" {
		c.Upstream.TokenURL = DefaultConfigUpstreamTokenURL
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = DefaultConfigUpstreamTimeout
	}
	if c.Credentials.Storage == "" {
		c.Credentials.Storage = DefaultConfigCredentialsStorage
	}

	// Dynamic defaults based on storage type
	switch c.Credentials.Storage {
	case CredentialsStorageFile:
		if c.Credentials.File == "" {
			configDir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("credentials.file required (auto-detect failed: %w)", err)
			}
			c.Credentials.File = filepath.Join(configDir, "zoom-mcp", "credentials.json")
		}
	case CredentialsStorageKeyring:
		if c.Credentials.KeyringUser == "" {
			currentUser, err := user.Current()
			if err != nil {
				return fmt.Errorf("credentials.keyring_user required (auto-detect failed: %w)", err)
			}
			c.Credentials.KeyringUser = currentUser.Username
		}
	case CredentialsStorageEnv:
		// variable names are fixed: ZOOM_CLIENT_ID, ZOOM_CLIENT_SECRET, ZOOM_ACCOUNT_ID
	}

	return nil
}

// Validate validates the configuration using struct tags and enum values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Metrics.Enabled && c.Server.Transport == server.TransportStdio {
		return errors.New("metrics.enabled requires the http or sse transport")
	}

	switch c.Credentials.Storage {
	case CredentialsStorageFile:
		if c.Credentials.File == "" {
			return errors.New("file path required for file storage")
		}
	case CredentialsStorageKeyring:
		if c.Credentials.KeyringUser == "" {
			return errors.New("keyring_user required for keyring storage")
		}
	}

	return nil
}
