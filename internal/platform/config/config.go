package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream resale backend
	UpstreamAPIURL  string        `mapstructure:"UPSTREAM_API_URL"`
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`

	// Local action journal. Empty DatabaseURL disables it.
	DatabaseURL      string
	EnableDBCheck    bool
	MigrationsPath   string        `mapstructure:"MIGRATIONS_PATH"`
	DBConnectTimeout time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	DBMaxConns       int32         `mapstructure:"DB_MAX_CONNS"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	RateLimit       string `mapstructure:"RATE_LIMIT"`
	MaxWorkspaces   int    `mapstructure:"MAX_WORKSPACES"`
}

// JournalEnabled reports whether console actions are persisted to Postgres.
func (c *Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UPSTREAM_API_URL", "http://localhost:8000/api")
	viper.SetDefault("UPSTREAM_TIMEOUT", "15s")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("DB_MAX_CONNS", 4)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("MAX_WORKSPACES", 256)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.UpstreamAPIURL = strings.TrimRight(viper.GetString("UPSTREAM_API_URL"), "/")
	if cfg.UpstreamAPIURL == "" {
		cfg.UpstreamAPIURL = "http://localhost:8000/api"
		log.Printf("Warning: UPSTREAM_API_URL not set. Defaulting to %s\n", cfg.UpstreamAPIURL)
	}

	timeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
		}
	}
	cfg.UpstreamTimeout = timeout

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Console action journal is disabled.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	connectTimeout := viper.GetDuration("DB_CONNECT_TIMEOUT")
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DB_CONNECT_TIMEOUT. Defaulting to %s.\n", connectTimeout.String())
	}
	cfg.DBConnectTimeout = connectTimeout
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 4
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.MaxWorkspaces = viper.GetInt("MAX_WORKSPACES")
	if cfg.MaxWorkspaces <= 0 {
		cfg.MaxWorkspaces = 256
		log.Printf("Warning: MAX_WORKSPACES must be positive. Defaulting to %d.\n", cfg.MaxWorkspaces)
	}

	return cfg, nil
}
