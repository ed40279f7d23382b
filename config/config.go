// Package config loads service configuration from, in increasing order of
// precedence: built-in defaults, an optional YAML file and the environment.
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigin   string        `yaml:"allowed_origin"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Window   time.Duration `yaml:"window"`
}

// RedisConfig enables the Redis result cache when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// PostgresConfig enables PostgreSQL calculation history when DSN is set.
type PostgresConfig struct {
	DSN             string `yaml:"dsn"`
	HistoryCapacity int    `yaml:"history_capacity"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AdvisorConfig configures the OpenAI-compatible chat endpoint used to explain
// refinance recommendations. Without an API key a template is used.
type AdvisorConfig struct {
	APIKey  string        `yaml:"api_key"`
	URL     string        `yaml:"url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type CashflowConfig struct {
	SurplusThreshold float64 `yaml:"surplus_threshold"`
	FoodSharePercent float64 `yaml:"food_share_percent"`
}

type Config struct {
	ServiceName string          `yaml:"service_name"`
	Version     string          `yaml:"version"`
	Server      ServerConfig    `yaml:"server"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Redis       RedisConfig     `yaml:"redis"`
	Postgres    PostgresConfig  `yaml:"postgres"`
	Log         LogConfig       `yaml:"log"`
	Advisor     AdvisorConfig   `yaml:"advisor"`
	Cashflow    CashflowConfig  `yaml:"cashflow"`
}

func Default() Config {
	return Config{
		ServiceName: "loan-prepay",
		Version:     "1.0.0",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigin:   "*",
		},
		RateLimit: RateLimitConfig{
			Capacity: 30,
			Window:   time.Minute,
		},
		Redis: RedisConfig{
			TTL: time.Hour,
		},
		Postgres: PostgresConfig{
			HistoryCapacity: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Advisor: AdvisorConfig{
			URL:     "https://api.openai.com/v1/chat/completions",
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
		Cashflow: CashflowConfig{
			SurplusThreshold: 10000,
			FoodSharePercent: 30,
		},
	}
}

// Load builds the configuration. path may be empty, in which case
// CONFIG_FILE is consulted; a missing file is an error only when a path was
// given explicitly.
func Load(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(c *Config) {
	c.Server.Addr = getEnv("HTTP_ADDR", c.Server.Addr)
	c.Server.ReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.IdleTimeout = getEnvDuration("HTTP_IDLE_TIMEOUT", c.Server.IdleTimeout)
	c.Server.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.AllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", c.Server.AllowedOrigin)

	c.RateLimit.Capacity = getEnvInt("RATE_LIMIT_CAPACITY", c.RateLimit.Capacity)
	c.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", c.RateLimit.Window)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.TTL = getEnvDuration("CACHE_TTL", c.Redis.TTL)

	c.Postgres.DSN = getEnv("DATABASE_URL", c.Postgres.DSN)
	c.Postgres.HistoryCapacity = getEnvInt("HISTORY_CAPACITY", c.Postgres.HistoryCapacity)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	c.Advisor.APIKey = getEnv("OPENAI_API_KEY", c.Advisor.APIKey)
	c.Advisor.URL = getEnv("ADVISOR_URL", c.Advisor.URL)
	c.Advisor.Model = getEnv("ADVISOR_MODEL", c.Advisor.Model)
	c.Advisor.Timeout = getEnvDuration("ADVISOR_TIMEOUT", c.Advisor.Timeout)

	c.Cashflow.SurplusThreshold = getEnvFloat("SURPLUS_THRESHOLD", c.Cashflow.SurplusThreshold)
	c.Cashflow.FoodSharePercent = getEnvFloat("FOOD_SHARE_PERCENT", c.Cashflow.FoodSharePercent)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server address is required"))
	}
	if c.RateLimit.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("rate limit capacity must be positive, got %d", c.RateLimit.Capacity))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("rate limit window must be positive, got %s", c.RateLimit.Window))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache ttl must not be negative, got %s", c.Redis.TTL))
	}
	if c.Cashflow.FoodSharePercent < 0 || c.Cashflow.FoodSharePercent > 100 {
		errs = append(errs, fmt.Errorf("food share percent must be within 0..100, got %.2f", c.Cashflow.FoodSharePercent))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
