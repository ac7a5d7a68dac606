package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Session backends
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

const (
	envPrefix  = "REMINDER_"
	secretPath = "/run/secrets/telegram_bot_token"
)

type Config struct {
	DB        DBConfig        `koanf:"db"`
	Timezone  string          `koanf:"timezone"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Session   SessionConfig   `koanf:"session"`
	Redis     RedisConfig     `koanf:"redis"`
	Telegram  TelegramConfig  `koanf:"telegram"`
	Log       LogConfig       `koanf:"log"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type SchedulerConfig struct {
	Interval time.Duration `koanf:"interval"`
}

type SessionConfig struct {
	Backend string        `koanf:"backend"`
	TTL     time.Duration `koanf:"ttl"` // 0 keeps sessions until finished or cancelled
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type TelegramConfig struct {
	Token   string `koanf:"token"`
	Timeout int    `koanf:"timeout"` // long-poll seconds
	Debug   bool   `koanf:"debug"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load layers defaults, the optional YAML file at configPath and REMINDER_*
// environment variables, in that order. The bot token comes from the Docker
// secret when present, then TELEGRAM_BOT_TOKEN.
func Load(configPath string) (*Config, error) {
	return load(configPath, secretPath)
}

func load(configPath, secret string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// REMINDER_SCHEDULER_INTERVAL -> scheduler.interval
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if token := botToken(secret); token != "" {
		k.Set("telegram.token", token)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Telegram.Token = strings.TrimSpace(cfg.Telegram.Token)

	return &cfg, nil
}

func botToken(secret string) string {
	if data, err := os.ReadFile(secret); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token
		}
	}
	return strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
}

func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("bot token not found: neither Docker secret nor TELEGRAM_BOT_TOKEN is set")
	}
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be positive, got %s", c.Scheduler.Interval)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl cannot be negative, got %s", c.Session.TTL)
	}

	switch c.Session.Backend {
	case SessionMemory:
	case SessionRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis session backend")
		}
	default:
		return fmt.Errorf("unknown session backend: %s (supported: %s, %s)",
			c.Session.Backend, SessionMemory, SessionRedis)
	}

	if c.Telegram.Timeout < 0 {
		return errors.New("telegram.timeout cannot be negative")
	}
	return nil
}

// Location is the zone users' dates and times are entered in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
