package config

import (
	"fmt"
	"strings"

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
	// log file rotation, 0 backups / age keeps rotated files forever
	LogMaxSizeMB  int  `toml:"log_max_size_mb"`
	LogMaxBackups int  `toml:"log_max_backups"`
	LogMaxAgeDays int  `toml:"log_max_age_days"`
	LogCompress   bool `toml:"log_compress"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// admin dashboard
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	// integrations
	FoodDataBaseURL        string `toml:"food_data_base_url"`
	PhotosBucket           string `toml:"photos_bucket"`
	PhotosRegion           string `toml:"photos_region"`
	PhotosEndpoint         string `toml:"photos_endpoint"`
	PhotosURLExpiryMinutes int    `toml:"photos_url_expiry_minutes"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] is missing", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.LoginRateLimitAllowedPerMin <= 0 {
		cfg.LoginRateLimitAllowedPerMin = 15
	}
	if cfg.LogMaxSizeMB <= 0 {
		cfg.LogMaxSizeMB = 50
	}

	return cfg, nil
}
