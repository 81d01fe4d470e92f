package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	DatabaseURL string `env:"DATABASE_URL,notEmpty"`
	Database    DatabaseConfig

	// Empty disables Redis; stats are then cached in process.
	RedisURL string `env:"REDIS_URL"`

	Kafka     KafkaConfig
	Casdoor   CasdoorConfig
	Selection SelectionConfig
}

type DatabaseConfig struct {
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	LogQueries      bool          `env:"DB_LOG_QUERIES" envDefault:"false"`
}

// KafkaConfig selects the event transport. Without brokers events stay in process.
type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	TopicPrefix string   `env:"KAFKA_TOPIC_PREFIX" envDefault:"quiz-selection."`
}

type CasdoorConfig struct {
	Endpoint     string `env:"CASDOOR_ENDPOINT"`
	ClientID     string `env:"CASDOOR_CLIENT_ID"`
	ClientSecret string `env:"CASDOOR_CLIENT_SECRET"`
	Cert         string `env:"CASDOOR_CERT"`
	Organization string `env:"CASDOOR_ORGANIZATION"`
	Application  string `env:"CASDOOR_APPLICATION"`
}

type SelectionConfig struct {
	PreviewDefaultLimit  int           `env:"SELECTION_PREVIEW_DEFAULT_LIMIT" envDefault:"5"`
	PreviewMaxLimit      int           `env:"SELECTION_PREVIEW_MAX_LIMIT" envDefault:"20"`
	StatsCacheTTL        time.Duration `env:"SELECTION_STATS_CACHE_TTL" envDefault:"5m"`
	MigrateLegacyFormats bool          `env:"SELECTION_MIGRATE_LEGACY_FORMATS" envDefault:"true"`
}

// LoadConfig reads .env when present, then the process environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Selection.PreviewDefaultLimit < 1 {
		return fmt.Errorf("SELECTION_PREVIEW_DEFAULT_LIMIT must be positive")
	}
	if c.Selection.PreviewMaxLimit < c.Selection.PreviewDefaultLimit {
		return fmt.Errorf("SELECTION_PREVIEW_MAX_LIMIT must not be below SELECTION_PREVIEW_DEFAULT_LIMIT")
	}
	if c.Selection.StatsCacheTTL <= 0 {
		return fmt.Errorf("SELECTION_STATS_CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CasdoorEnabled reports whether token validation can be configured
func (c *Config) CasdoorEnabled() bool {
	return c.Casdoor.Endpoint != "" && c.Casdoor.ClientID != ""
}
