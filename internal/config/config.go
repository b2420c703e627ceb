package config

import (
	"fmt"
	"strings"

	"github.com/2beens/gymanalytics/internal/gymstats/analytics"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	// run schema migrations on startup
	PostgresMigrate bool `toml:"postgres_migrate"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`

	// workout writes allowed per user, per minute
	WriteRateLimitPerMin int `toml:"write_rate_limit_per_min"`
	// analysis refresh requests allowed per user, per minute
	RefreshRateLimitPerMin int `toml:"refresh_rate_limit_per_min"`
	// in-memory analysis document cache size, megabytes
	AnalysisCacheSizeMB int `toml:"analysis_cache_size_mb"`

	Analytics analytics.Thresholds `toml:"analytics"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

// newToml pre-seeds both sections, so the decoder overwrites only the keys
// present in the file. An explicit zero survives.
func newToml() *Toml {
	return &Toml{
		Development: &Config{Analytics: analytics.DefaultThresholds()},
		Production:  &Config{Analytics: analytics.DefaultThresholds()},
	}
}

func section(env string) (string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return "development", nil
	case "prod", "production":
		return "production", nil
	default:
		return "", fmt.Errorf("unknown env: %s", env)
	}
}

func (t *Toml) Get(env string) (*Config, error) {
	name, err := section(env)
	if err != nil {
		return nil, err
	}
	if name == "development" {
		return t.Development, nil
	}
	return t.Production, nil
}

// Load reads the TOML file at path and returns the section for env, with
// defaults applied to the unset values.
func Load(env, path string) (*Config, error) {
	t := newToml()
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(t, md, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	t := newToml()
	md, err := toml.Decode(data, t)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(t, md, env)
}

func fromToml(t *Toml, md toml.MetaData, env string) (*Config, error) {
	name, err := section(env)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined(name) {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.WriteRateLimitPerMin <= 0 {
		cfg.WriteRateLimitPerMin = 60
	}
	if cfg.RefreshRateLimitPerMin <= 0 {
		cfg.RefreshRateLimitPerMin = 5
	}
	if cfg.AnalysisCacheSizeMB <= 0 {
		cfg.AnalysisCacheSizeMB = 16
	}

	return cfg, nil
}
