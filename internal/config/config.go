package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// DBDSN vacío => storage in-memory (modo dev).
	DBDSN        string `mapstructure:"DB_DSN"`
	DBMaxConns   int    `mapstructure:"DB_MAX_CONNS"`
	MigrateOnRun bool   `mapstructure:"MIGRATE_ON_START"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	LogFile   string `mapstructure:"LOG_FILE"`
	AppName   string `mapstructure:"APP_NAME"`

	SentryDSN string `mapstructure:"SENTRY_DSN"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV",
	"DB_DSN", "DB_MAX_CONNS", "MIGRATE_ON_START",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "APP_NAME",
	"SENTRY_DSN",
	"READ_TIMEOUT", "WRITE_TIMEOUT",
}

// Load lee env vars y, si existe, un archivo .env en el directorio actual.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "hospital-intake")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	// Unmarshal solo ve las env vars que están bindeadas explícitamente.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesPostgres indica si hay DSN configurado; si no, se usa memoria.
func (c *Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DBDSN) != ""
}
