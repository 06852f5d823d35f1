// Package config provides configuration loading, defaults, and validation.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "CASEMATCH"

// envKeys lists every configuration key so that environment-only settings are
// visible to viper.Unmarshal.  Viper resolves env vars lazily by key; a key
// that appears in no config file must be bound here or LoadFromEnv would
// silently ignore it.
var envKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.shutdown_timeout", "server.rate_limit_rps", "server.rate_limit_burst",
	"server.cors_allow_origins",
	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_conns",
	"database.min_conns", "database.conn_max_lifetime",
	"database.conn_max_idle_time", "database.migration_path",
	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.min_idle_conns", "redis.dial_timeout", "redis.read_timeout",
	"redis.write_timeout", "redis.key_prefix",
	"kafka.brokers", "kafka.acks", "kafka.max_retries", "kafka.batch_size",
	"kafka.batch_timeout", "kafka.write_timeout",
	"cache.enabled", "cache.result_ttl",
	"log.level", "log.format", "log.output_paths", "log.error_output_paths",
}

// newViper builds a pre-configured Viper instance: YAML file type, CASEMATCH_
// env prefix, automatic env binding, and a key replacer that maps "." → "_"
// so that nested keys like "database.host" resolve to CASEMATCH_DATABASE_HOST.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges CASEMATCH_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CASEMATCH_* environment variables,
// with no config file.  Preferred for containerised deployments.
//
// Naming convention: CASEMATCH_<SECTION>_<FIELD>, e.g. CASEMATCH_SERVER_PORT,
// CASEMATCH_REDIS_ADDR.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed Config
// whenever the file changes on disk.  Intended for hot-reloading non-critical
// settings such as the log level; callers are responsible for applying only
// the safe subset at runtime.  A change that fails to parse or validate is
// dropped without invoking onChange.
//
// Watch is non-blocking; the watcher goroutine is managed by viper.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should have called Load first, so errors here
	// only repeat what Load already reported.
	_ = v.ReadInConfig()

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

// MustLoad wraps Load and panics on error.  For use in main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
