// Package config loads runtime settings from the environment.
//
// Variables use the WORKFORCE_ prefix and the first underscore after it
// separates the section: WORKFORCE_DATABASE_SSL_MODE -> database.ssl_mode.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "WORKFORCE_"

type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Redis    RedisConfig    `koanf:"redis"`
	Kafka    KafkaConfig    `koanf:"kafka"`
	Auth     AuthConfig     `koanf:"auth"`
}

type AppConfig struct {
	Env          string        `koanf:"env" validate:"required,oneof=development staging production test"`
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"gt=0"`

	// RateLimit is requests per second per client on mutating routes; 0 disables it.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`
}

type DatabaseConfig struct {
	Host       string `koanf:"host" validate:"required"`
	Port       string `koanf:"port" validate:"required"`
	User       string `koanf:"user" validate:"required"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name" validate:"required"`
	SSLMode    string `koanf:"ssl_mode" validate:"required,oneof=disable require verify-ca verify-full"`
	MaxRetries int    `koanf:"max_retries" validate:"gte=1"`
	Migrate    bool   `koanf:"migrate"`
}

// DSN renders the libpq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// Redis is optional; an empty address disables list caching.
type RedisConfig struct {
	Addr string `koanf:"addr"`
}

// Kafka is optional for the api binary; without a broker no outbox rows are written.
type KafkaConfig struct {
	Broker       string        `koanf:"broker"`
	GroupID      string        `koanf:"group_id"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

// Auth is optional; without a secret the write guard is disabled.
type AuthConfig struct {
	JWTSecret  string `koanf:"jwt_secret"`
	ModelPath  string `koanf:"model_path"`
	PolicyPath string `koanf:"policy_path"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:          "development",
			Port:         "3000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
			RateLimit:    20,
			RateBurst:    40,
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			Port:       "5432",
			User:       "postgres",
			Name:       "workforce",
			SSLMode:    "disable",
			MaxRetries: 5,
			Migrate:    true,
		},
		Kafka: KafkaConfig{
			GroupID:      "go-workforce-audit",
			PollInterval: 3 * time.Second,
		},
		Auth: AuthConfig{
			ModelPath:  "configs/rbac_model.conf",
			PolicyPath: "configs/rbac_policy.csv",
		},
	}
}

// Load reads .env (if any) and the process environment over the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
