package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/internal/directory"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, directory.DefaultEndpoint, cfg.Endpoint)
	assert.Zero(t, cfg.FetchTimeout)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, "userdir", cfg.ServiceName)
	assert.False(t, cfg.TracingEnabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("USERDIR_ENDPOINT", "http://localhost:8080/users")
	t.Setenv("USERDIR_FETCH_TIMEOUT", "5s")
	t.Setenv("USERDIR_MOUSE", "false")
	t.Setenv("USERDIR_LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/users", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.TracingEnabled())

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
endpoint = "https://users.example.test/v1/users"
fetch_timeout = "750ms"
log_file = "/tmp/userdir.log"
log_format = "json"
mouse = false
alt_screen = false
service_name = "userdir-dev"
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "https://users.example.test/v1/users", cfg.Endpoint)
	assert.Equal(t, 750*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, "/tmp/userdir.log", cfg.LogFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Mouse)
	assert.False(t, cfg.AltScreen)
	assert.Equal(t, "userdir-dev", cfg.ServiceName)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	p := writeConfig(t, `
endpoint = "https://file.example.test/users"
mouse = false
`)
	t.Setenv("USERDIR_ENDPOINT", "https://env.example.test/users")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.test/users", cfg.Endpoint)
	assert.False(t, cfg.Mouse, "keys absent from the environment still come from the file")
}

func TestLoad_UnknownFileKey(t *testing.T) {
	p := writeConfig(t, `endpont = "https://typo.example.test"`)

	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: endpont")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Endpoint:  directory.DefaultEndpoint,
			LogLevel:  "info",
			LogFormat: "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty endpoint falls back", mutate: func(c *Config) { c.Endpoint = "" }},
		{name: "ftp scheme", mutate: func(c *Config) { c.Endpoint = "ftp://example.test/users" }, wantErr: true},
		{name: "no host", mutate: func(c *Config) { c.Endpoint = "https:///users" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.FetchTimeout = -time.Second }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, c.Endpoint)
		})
	}
}
