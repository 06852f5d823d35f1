// Package config defines all configuration structures for the Takweol
// case-analysis service.  No I/O or parsing logic lives in this file, only
// plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// RateLimitRPS and RateLimitBurst parameterize the token-bucket limiter
	// applied to /api/v1.  Zero RPS disables limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`

	// CORSAllowOrigins lists origins allowed to call the API from a browser.
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the lead store.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// DSN renders the pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// RedisConfig holds Redis connection parameters for the analysis-result cache.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// KafkaConfig holds Kafka producer parameters for lead / analysis events.
type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	Acks         string        `mapstructure:"acks"` // "none" | "one" | "all"
	MaxRetries   int           `mapstructure:"max_retries"`
	BatchSize    int           `mapstructure:"batch_size"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Enabled reports whether event publishing is configured at all.  An empty
// broker list turns the producer into a no-op so a single-node deployment
// needs no broker.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// CacheConfig tunes the analysis-result cache behaviour.
type CacheConfig struct {
	// Enabled guards the whole cache layer; with it off every request hits
	// the engine directly (the engine is cheap, the cache exists to absorb
	// repeated polling during a live chat session).
	Enabled bool `mapstructure:"enabled"`

	// ResultTTL is the lifetime of a cached AnalysisResult.
	ResultTTL time.Duration `mapstructure:"result_ttl"`
}

// Config is the root configuration aggregate.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      logging.Config `mapstructure:"log"`
}

// Validate checks cross-field consistency.  Defaults must be applied first;
// Validate does not fill gaps, it only rejects contradictions.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release, or test", c.Server.Mode)
	}
	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("server.rate_limit_rps must not be negative")
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("server.rate_limit_burst must be positive when rate limiting is on")
	}
	if c.Database.Host != "" {
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("database.port %d out of range", c.Database.Port)
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database.db_name required when database.host is set")
		}
	}
	if c.Cache.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr required when cache.enabled is true")
		}
		if c.Cache.ResultTTL <= 0 {
			return fmt.Errorf("cache.result_ttl must be positive")
		}
	}
	if c.Kafka.Enabled() {
		switch c.Kafka.Acks {
		case "none", "one", "all":
		default:
			return fmt.Errorf("kafka.acks %q must be none, one, or all", c.Kafka.Acks)
		}
	}
	return nil
}
