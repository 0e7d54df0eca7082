// FilePath: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderFixture  = "fixture"
	ProviderPostgres = "postgres"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	AppDB PostgresConfig `mapstructure:"postgres_app"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	SnapshotKey string        `mapstructure:"snapshot_key"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`
}

// CatalogConfig selects where rooms come from and how often they refresh.
type CatalogConfig struct {
	Provider        string        `mapstructure:"provider"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	SeedFixture     bool          `mapstructure:"seed_fixture"`
}

type SessionsConfig struct {
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	ReapInterval time.Duration `mapstructure:"reap_interval"`
}

type MonitoringConfig struct {
	AccessLog bool `mapstructure:"access_log"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INFRAMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Load config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.postgres_app.host", "")
	v.SetDefault("database.postgres_app.port", 5432)
	v.SetDefault("database.postgres_app.user", "postgres")
	v.SetDefault("database.postgres_app.password", "")
	v.SetDefault("database.postgres_app.dbname", "inframind")
	v.SetDefault("database.postgres_app.sslmode", "disable")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.snapshot_key", "inframind:catalog:rooms")
	v.SetDefault("redis.snapshot_ttl", "24h")

	// Catalog defaults
	v.SetDefault("catalog.provider", ProviderFixture)
	v.SetDefault("catalog.refresh_interval", "30s")
	v.SetDefault("catalog.seed_fixture", false)

	// Session defaults
	v.SetDefault("sessions.idle_timeout", "30m")
	v.SetDefault("sessions.reap_interval", "1m")

	// Monitoring defaults
	v.SetDefault("monitoring.access_log", true)
}

func validateConfig(config *Config) error {
	switch config.Catalog.Provider {
	case ProviderFixture:
	case ProviderPostgres:
		if config.Database.AppDB.Host == "" {
			return fmt.Errorf("postgres app host is required for the postgres catalog provider")
		}
	default:
		return fmt.Errorf("unknown catalog provider %q", config.Catalog.Provider)
	}
	if config.Catalog.RefreshInterval <= 0 {
		return fmt.Errorf("catalog refresh interval must be positive")
	}
	if config.Sessions.IdleTimeout <= 0 || config.Sessions.ReapInterval <= 0 {
		return fmt.Errorf("session idle timeout and reap interval must be positive")
	}
	if config.Redis.Enabled && config.Redis.Host == "" {
		return fmt.Errorf("redis host is required when redis is enabled")
	}
	return nil
}
