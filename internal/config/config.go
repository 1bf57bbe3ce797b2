// Package config loads runtime configuration for userdir.
//
// Precedence, lowest to highest: struct defaults, the TOML config file,
// environment variables, then CLI flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"userdir/internal/directory"
)

// EnvPrefix prefixes every environment variable except the standard OTEL_* ones.
const EnvPrefix = "USERDIR"

// Config holds runtime configuration.
type Config struct {
	Endpoint     string        `envconfig:"ENDPOINT" default:"https://jsonplaceholder.typicode.com/users"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"0s"`

	LogFile   string `envconfig:"LOG_FILE"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	Mouse     bool `envconfig:"MOUSE" default:"true"`
	AltScreen bool `envconfig:"ALT_SCREEN" default:"true"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"userdir"`
}

// fileConfig mirrors Config for TOML decoding. Pointer fields distinguish
// "absent" from the zero value.
type fileConfig struct {
	Endpoint     *string   `toml:"endpoint"`
	FetchTimeout *duration `toml:"fetch_timeout"`
	LogFile      *string   `toml:"log_file"`
	LogLevel     *string   `toml:"log_level"`
	LogFormat    *string   `toml:"log_format"`
	Mouse        *bool     `toml:"mouse"`
	AltScreen    *bool     `toml:"alt_screen"`
	OTLPEndpoint *string   `toml:"otlp_endpoint"`
	ServiceName  *string   `toml:"service_name"`
}

// duration decodes TOML strings such as "5s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load reads configuration from the environment and, when path is non-empty,
// from the TOML file at path. Values set in the environment win over the file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/userdir/config.toml (or the platform
// equivalent) if that file exists, otherwise "".
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "userdir", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func (c *Config) applyFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	setString(&c.Endpoint, fc.Endpoint, "ENDPOINT")
	if fc.FetchTimeout != nil && !envSet("FETCH_TIMEOUT") {
		c.FetchTimeout = fc.FetchTimeout.Duration
	}
	setString(&c.LogFile, fc.LogFile, "LOG_FILE")
	setString(&c.LogLevel, fc.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, fc.LogFormat, "LOG_FORMAT")
	setBool(&c.Mouse, fc.Mouse, "MOUSE")
	setBool(&c.AltScreen, fc.AltScreen, "ALT_SCREEN")
	setString(&c.OTLPEndpoint, fc.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	setString(&c.ServiceName, fc.ServiceName, "OTEL_SERVICE_NAME")
	return nil
}

func setString(dst *string, v *string, key string) {
	if v != nil && !envSet(key) {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool, key string) {
	if v != nil && !envSet(key) {
		*dst = *v
	}
}

// envSet reports whether the prefixed or bare variable for key is present,
// matching envconfig's lookup order.
func envSet(key string) bool {
	if _, ok := os.LookupEnv(EnvPrefix + "_" + key); ok {
		return true
	}
	_, ok := os.LookupEnv(key)
	return ok
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		c.Endpoint = directory.DefaultEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q: missing host", c.Endpoint)
	}
	if c.FetchTimeout < 0 {
		return errors.New("fetch timeout must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: want text or json", c.LogFormat)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// TracingEnabled reports whether an OTLP endpoint is configured.
func (c *Config) TracingEnabled() bool {
	return c != nil && c.OTLPEndpoint != ""
}
