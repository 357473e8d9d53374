package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Seed      SeedConfig      `koanf:"seed"`
	AWS       AWSConfig       `koanf:"aws"`
	Logging   LoggingConfig   `koanf:"logging"`
	CORS      CORSConfig      `koanf:"cors"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// TrustedProxies are the IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the client IP is always the connection's remote address.
	TrustedProxies []string `koanf:"trusted_proxies"`
}

// DatabaseConfig selects and configures the recipe store backend
type DatabaseConfig struct {
	Driver   string `koanf:"driver"` // "sqlite" or "postgres"
	Path     string `koanf:"path"`   // sqlite file
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"ssl_mode"`
}

// RedisConfig is only needed when rate limiting is enabled
type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	URL      string `koanf:"url"`
}

// RateLimitConfig configures the per-client fixed window limiter on /api
type RateLimitConfig struct {
	Enabled bool          `koanf:"enabled"`
	Limit   int           `koanf:"limit"`
	Window  time.Duration `koanf:"window"`
}

// SeedConfig points at the sample set used when the store is empty.
// An empty Source means the built-in set.
type SeedConfig struct {
	Source string `koanf:"source"`
}

// AWSConfig is used for s3:// seed sources
type AWSConfig struct {
	Region string `koanf:"region"`
}

// LoggingConfig configures the global zerolog logger
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CORSConfig lists allowed origins; "*" allows all
type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

// ConfigPathEnvVar overrides the YAML config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "3000",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:  "sqlite",
			Path:    "recipes.db",
			Port:    "5432",
			SSLMode: "disable",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Limit:   60,
			Window:  time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: defaultLogFormat(),
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of priority.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for _, path := range []string{"cors.origins", "server.trusted_proxies"} {
		if err := splitListField(k, path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if IsProduction() {
		loadProdSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envMappings maps environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"port":                    "server.port",
	"server_port":             "server.port",
	"server_host":             "server.host",
	"server_shutdown_timeout": "server.shutdown_timeout",
	"trusted_proxies":         "server.trusted_proxies",
	"db_driver":               "database.driver",
	"db_path":                 "database.path",
	"db_host":                 "database.host",
	"db_port":                 "database.port",
	"db_user":                 "database.user",
	"db_password":             "database.password",
	"db_name":                 "database.name",
	"db_ssl_mode":             "database.ssl_mode",
	"redis_host":              "redis.host",
	"redis_port":              "redis.port",
	"redis_password":          "redis.password",
	"redis_db":                "redis.db",
	"redis_url":               "redis.url",
	"rate_limit_enabled":      "rate_limit.enabled",
	"rate_limit_requests":     "rate_limit.limit",
	"rate_limit_window":       "rate_limit.window",
	"seed_source":             "seed.source",
	"aws_region":              "aws.region",
	"log_level":               "logging.level",
	"log_format":              "logging.format",
	"cors_origins":            "cors.origins",
}

func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

// splitListField turns a comma separated env value into a slice
func splitListField(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if err := k.Set(path, parts); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

// loadProdSecrets fills credentials from Docker secrets when the environment left them empty
func loadProdSecrets(cfg *Config) {
	if cfg.Database.Password == "" {
		cfg.Database.Password = readSecret("db_password")
	}
	if cfg.Redis.Password == "" {
		cfg.Redis.Password = readSecret("redis_password")
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
