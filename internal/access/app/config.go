package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config defines application configuration loaded from files and environment.
type Config struct {
	Env                 string        `koanf:"env"`
	Port                int           `koanf:"port"`
	ShutdownGracePeriod time.Duration `koanf:"shutdown_grace_period"`

	Log          LogConfig          `koanf:"log"`
	Database     DatabaseConfig     `koanf:"database"`
	Session      SessionConfig      `koanf:"session"`
	Resolver     ResolverConfig     `koanf:"resolver"`
	Onboard      OnboardConfig      `koanf:"onboard"`
	Housekeeping HousekeepingConfig `koanf:"housekeeping"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type DatabaseConfig struct {
	File string `koanf:"file"`
}

// SessionConfig describes the tokens minted by the identity service that
// this service verifies. Roles are never carried in those tokens.
type SessionConfig struct {
	Secret string `koanf:"secret"`
	Issuer string `koanf:"issuer"`
}

type ResolverConfig struct {
	MaxAttempts int           `koanf:"max_attempts"`
	RetryDelay  time.Duration `koanf:"retry_delay"`
}

// OnboardConfig holds the argon2id hash of the pre-shared service key that
// gates the signup onboarding endpoint.
type OnboardConfig struct {
	KeyHash string `koanf:"key_hash"`
}

type HousekeepingConfig struct {
	Interval  time.Duration `koanf:"interval"`
	Retention time.Duration `koanf:"retention"`
}

// LoadConfig loads configuration in order:
// 1) config/config.yaml (optional)
// 2) config/config.<env>.yaml (optional)
// 3) Environment variables with prefix ACCESS_ mapped using __ as nested
// separator, e.g. ACCESS_SESSION__SECRET, ACCESS_RESOLVER__MAX_ATTEMPTS.
// Later sources override earlier ones.
func LoadConfig() Config {
	k := koanf.New(".")

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "config"
	}

	base := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(base); err == nil {
		if err := k.Load(file.Provider(base), yaml.Parser()); err != nil {
			log.Printf("config: failed loading base: %v", err)
		}
	}

	envName := os.Getenv("APP_ENV")
	if envName == "" {
		envName = "dev"
	}
	envFile := filepath.Join(configDir, "config."+envName+".yaml")
	if _, err := os.Stat(envFile); err == nil {
		if err := k.Load(file.Provider(envFile), yaml.Parser()); err != nil {
			log.Printf("config: failed loading env file: %v", err)
		}
	}

	_ = k.Load(env.Provider("ACCESS_", ".", func(s string) string {
		// ACCESS_SESSION__SECRET -> session.secret
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ACCESS_")), "__", ".")
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		log.Printf("config: unmarshal error: %v", err)
	}

	return cfg.withDefaults(envName)
}

func (c Config) withDefaults(envName string) Config {
	if c.Env == "" {
		c.Env = envName
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ShutdownGracePeriod <= 0 {
		c.ShutdownGracePeriod = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Database.File == "" {
		c.Database.File = "access.db"
	}
	if c.Session.Issuer == "" {
		c.Session.Issuer = "opsdesk-identity"
	}
	if c.Resolver.MaxAttempts <= 0 {
		c.Resolver.MaxAttempts = 3
	}
	if c.Resolver.RetryDelay <= 0 {
		c.Resolver.RetryDelay = 500 * time.Millisecond
	}
	if c.Housekeeping.Interval <= 0 {
		c.Housekeeping.Interval = 1 * time.Hour
	}
	if c.Housekeeping.Retention <= 0 {
		c.Housekeeping.Retention = 180 * 24 * time.Hour
	}
	return c
}
