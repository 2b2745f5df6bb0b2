package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StorageDisk     = "disk"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMinio    = "minio"
)

type Config struct {
	Host        string
	Port        int
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StorageBackend string `toml:"storage_backend"`
	DataDir        string `toml:"data_dir"`
	PublicDir      string `toml:"public_dir"`
	// redis, used as document store and for rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresDB   string `toml:"postgres_db"`
	PostgresUser string `toml:"postgres_user"`
	// minio / s3
	MinioEndpoint string `toml:"minio_endpoint"`
	MinioBucket   string `toml:"minio_bucket"`
	MinioUseSSL   bool   `toml:"minio_use_ssl"`
	// http
	AllowedOrigins       []string `toml:"allowed_origins"`
	WriteRateLimitPerMin int      `toml:"write_rate_limit_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the config of the given environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageDisk
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.PublicDir == "" {
		c.PublicDir = "./public"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory, StorageDisk:
	case StorageRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis storage needs redis_host and redis_port")
		}
	case StoragePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDB == "" {
			return errors.New("postgres storage needs postgres_host, postgres_port and postgres_db")
		}
	case StorageMinio:
		if c.MinioEndpoint == "" || c.MinioBucket == "" {
			return errors.New("minio storage needs minio_endpoint and minio_bucket")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	if c.WriteRateLimitPerMin < 0 {
		return errors.New("write_rate_limit_per_min must not be negative")
	}
	return nil
}

// RedisEnabled reports whether a redis connection is configured at all.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" && c.RedisPort != ""
}

func (c *Config) MetricsEnabled() bool {
	return c.PrometheusMetricsPort != ""
}
