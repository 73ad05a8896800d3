// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Vinted        VintedConfig        `yaml:"vinted"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// VintedConfig defines the Vinted catalog source settings.
type VintedConfig struct {
	BaseURL          string          `yaml:"base_url"`
	MaxItemsPerCheck int             `yaml:"max_items_per_check"`
	RequestTimeout   time.Duration   `yaml:"request_timeout"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines catalog request rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScheduleConfig defines the sweep cadence and inter-check pacing.
type ScheduleConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	CheckDelay    time.Duration `yaml:"check_delay"`
}

// NotificationsConfig defines notification delivery settings.
type NotificationsConfig struct {
	// Backend selects the delivery mechanism: discord, webhook, noop.
	Backend string        `yaml:"backend"`
	Discord DiscordConfig `yaml:"discord"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// DiscordConfig defines Discord bot settings.
type DiscordConfig struct {
	Token string `yaml:"token"`
	// CommandsEnabled registers the slash-command front end when true.
	CommandsEnabled bool `yaml:"commands_enabled"`
}

// WebhookConfig defines generic webhook settings. The per-watch
// destination carries the URL; headers apply to every request.
type WebhookConfig struct {
	Headers map[string]string `yaml:"headers"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyVintedDefaults(&cfg.Vinted)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationsDefaults(&cfg.Notifications)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyVintedDefaults(v *VintedConfig) {
	if v.BaseURL == "" {
		v.BaseURL = "https://www.vinted.nl"
	}
	if v.MaxItemsPerCheck == 0 {
		v.MaxItemsPerCheck = 10
	}
	if v.RequestTimeout == 0 {
		v.RequestTimeout = 30 * time.Second
	}
	applyRateLimitDefaults(&v.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 3
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 2000
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = 5 * time.Minute
	}
	if s.CheckDelay == 0 {
		s.CheckDelay = 2 * time.Second
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.Backend == "" {
		n.Backend = "discord"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Vinted.MaxItemsPerCheck < 0 {
		errs = append(errs, fmt.Errorf("vinted.max_items_per_check must be positive"))
	}

	switch cfg.Notifications.Backend {
	case "discord":
		if cfg.Notifications.Discord.Token == "" {
			errs = append(
				errs,
				fmt.Errorf("notifications.discord.token is required when backend is discord"),
			)
		}
	case "webhook", "noop":
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"notifications.backend must be one of: discord, webhook, noop (got %q)",
				cfg.Notifications.Backend,
			),
		)
	}

	return errors.Join(errs...)
}
