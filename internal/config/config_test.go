package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 10s
  write_timeout: 15s
database:
  host: db.internal
  port: 5433
  name: vintedwatch
  user: app
  password: secret
  sslmode: require
  pool_size: 20
vinted:
  base_url: https://www.vinted.fr
  max_items_per_check: 20
  request_timeout: 5s
  rate_limit:
    per_second: 2.5
    burst: 5
    daily_limit: 500
schedule:
  check_interval: 2m
  check_delay: 1s
notifications:
  backend: webhook
  webhook:
    headers:
      X-Custom: "yes"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 20, cfg.Database.PoolSize)
	assert.Equal(t, "https://www.vinted.fr", cfg.Vinted.BaseURL)
	assert.Equal(t, 20, cfg.Vinted.MaxItemsPerCheck)
	assert.Equal(t, 2.5, cfg.Vinted.RateLimit.PerSecond)
	assert.Equal(t, int64(500), cfg.Vinted.RateLimit.DailyLimit)
	assert.Equal(t, 2*time.Minute, cfg.Schedule.CheckInterval)
	assert.Equal(t, time.Second, cfg.Schedule.CheckDelay)
	assert.Equal(t, "webhook", cfg.Notifications.Backend)
	assert.Equal(t, "yes", cfg.Notifications.Webhook.Headers["X-Custom"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, `
database:
  host: localhost
  name: vintedwatch
  user: app
notifications:
  backend: noop
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.PoolSize)
	assert.Equal(t, "https://www.vinted.nl", cfg.Vinted.BaseURL)
	assert.Equal(t, 10, cfg.Vinted.MaxItemsPerCheck)
	assert.Equal(t, 1.0, cfg.Vinted.RateLimit.PerSecond)
	assert.Equal(t, 3, cfg.Vinted.RateLimit.Burst)
	assert.Equal(t, int64(2000), cfg.Vinted.RateLimit.DailyLimit)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.CheckInterval)
	assert.Equal(t, 2*time.Second, cfg.Schedule.CheckDelay)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("VW_DB_PASSWORD", "super-secret")
	t.Setenv("VW_DISCORD_TOKEN", "bot-token")

	path := writeTempConfig(t, `
database:
  host: localhost
  name: vintedwatch
  user: app
  password: ${VW_DB_PASSWORD}
notifications:
  backend: discord
  discord:
    token: ${VW_DISCORD_TOKEN}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.Database.Password)
	assert.Equal(t, "bot-token", cfg.Notifications.Discord.Token)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing database host",
			yaml:    "database:\n  name: vw\n  user: app\nnotifications:\n  backend: noop\n",
			wantErr: "database.host is required",
		},
		{
			name:    "missing database name",
			yaml:    "database:\n  host: localhost\n  user: app\nnotifications:\n  backend: noop\n",
			wantErr: "database.name is required",
		},
		{
			name:    "missing database user",
			yaml:    "database:\n  host: localhost\n  name: vw\nnotifications:\n  backend: noop\n",
			wantErr: "database.user is required",
		},
		{
			name:    "discord backend without token",
			yaml:    "database:\n  host: localhost\n  name: vw\n  user: app\nnotifications:\n  backend: discord\n",
			wantErr: "notifications.discord.token is required",
		},
		{
			name:    "unknown backend",
			yaml:    "database:\n  host: localhost\n  name: vw\n  user: app\nnotifications:\n  backend: carrier-pigeon\n",
			wantErr: "notifications.backend must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.yaml)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "database: [not: a: map\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "vintedwatch",
		User:     "app",
		Password: "pw",
		SSLMode:  "disable",
	}
	assert.Equal(
		t,
		"host=localhost port=5432 dbname=vintedwatch user=app password=pw sslmode=disable",
		d.DSN(),
	)
}
