package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds runtime configuration. Every field maps to one env var.
type Config struct {
	Port   string `mapstructure:"PORT"`
	AppEnv string `mapstructure:"APP_ENV"`

	// Upstream resource API
	APIBaseURL              string        `mapstructure:"API_BASE_URL"`
	APITimeout              time.Duration `mapstructure:"API_TIMEOUT"`
	BreakerFailureThreshold int           `mapstructure:"BREAKER_FAILURE_THRESHOLD"`
	BreakerOpenTimeout      time.Duration `mapstructure:"BREAKER_OPEN_TIMEOUT"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Caching and notifications
	CacheBackend    string        `mapstructure:"CACHE_BACKEND"`
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	NotificationTTL time.Duration `mapstructure:"NOTIFICATION_TTL"`

	// Preferences database
	DBHost     string `mapstructure:"DB_HOST"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	Locale      string `mapstructure:"LOCALE"`
	MockAPIPort string `mapstructure:"MOCKAPI_PORT"`
}

var keys = []string{
	"PORT", "APP_ENV",
	"API_BASE_URL", "API_TIMEOUT", "BREAKER_FAILURE_THRESHOLD", "BREAKER_OPEN_TIMEOUT",
	"JWT_SECRET",
	"CACHE_BACKEND", "CACHE_TTL", "REDIS_ADDR", "NOTIFICATION_TTL",
	"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE",
	"LOCALE", "MOCKAPI_PORT",
}

// Load reads an optional .env file, then the environment, then defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for _, k := range keys {
		// AutomaticEnv only resolves keys viper already knows about
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:3333")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", "30s")
	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("NOTIFICATION_TTL", "10m")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("LOCALE", "pt-BR")
	v.SetDefault("MOCKAPI_PORT", "3333")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}

	c.CacheBackend = strings.ToLower(c.CacheBackend)
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("config: CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.CacheBackend)
	}

	if c.APITimeout <= 0 {
		return fmt.Errorf("config: API_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PreferencesEnabled reports whether a preferences database is configured.
func (c *Config) PreferencesEnabled() bool {
	return c.DBHost != ""
}
