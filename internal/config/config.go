package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// EnvPrefix namespaces environment overrides, e.g. ITINERARY_SERVER_PORT.
const EnvPrefix = "ITINERARY"

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		Port              string        `mapstructure:"port"`
		ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
		ReadTimeout       time.Duration `mapstructure:"readTimeout"`
		WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
		IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
		RequestTimeout    time.Duration `mapstructure:"requestTimeout"`
		AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Catalog struct {
		Source      string `mapstructure:"source"`
		CSVPath     string `mapstructure:"csvPath"`
		SQLitePath  string `mapstructure:"sqlitePath"`
		DatabaseURL string `mapstructure:"databaseURL"`
	} `mapstructure:"catalog"`
	Cache struct {
		Backend         string        `mapstructure:"backend"`
		TTL             time.Duration `mapstructure:"ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
		RedisAddr       string        `mapstructure:"redisAddr"`
		RedisPassword   string        `mapstructure:"redisPassword"`
		RedisDB         int           `mapstructure:"redisDB"`
	} `mapstructure:"cache"`
	Planner struct {
		Clusters           int `mapstructure:"clusters"`
		DiagnosticClusters int `mapstructure:"diagnosticClusters"`
	} `mapstructure:"planner"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// Load reads the embedded defaults, merges a config.yml found in the working
// directory or ./config, then applies ITINERARY_* environment overrides.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("load config: read embedded config: %w", err)
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("load config: merge file config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case "csv", "sqlite", "postgres":
	default:
		return fmt.Errorf("catalog.source must be csv, sqlite or postgres, got %q", c.Catalog.Source)
	}

	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache.backend must be none, memory or redis, got %q", c.Cache.Backend)
	}

	if c.Catalog.Source == "postgres" && strings.TrimSpace(c.Catalog.DatabaseURL) == "" {
		return errors.New("catalog.databaseURL is required for the postgres catalog")
	}
	return nil
}

// Get returns the environment variable key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
