// Package config loads service configuration from an optional YAML file
// and the environment. Environment variables always win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`

	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	MigrationsPath string `yaml:"migrations_path"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// URL is the postgres:// form used by golang-migrate.
func (d DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type JWTConfig struct {
	Secret    string        `yaml:"secret"`
	AccessTTL time.Duration `yaml:"access_ttl"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	AuditTopic string   `yaml:"audit_topic"`
}

type RateLimitConfig struct {
	LoginPerSecond   float64 `yaml:"login_per_second"`
	LoginBurst       int     `yaml:"login_burst"`
	AccountPerSecond float64 `yaml:"account_per_second"`
	AccountBurst     int     `yaml:"account_burst"`
}

func defaults() Config {
	return Config{
		Env:  "development",
		Port: "3000",
		DB: DBConfig{
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		JWT:   JWTConfig{AccessTTL: 24 * time.Hour},
		Kafka: KafkaConfig{AuditTopic: "hrm.audit.v1"},
		RateLimit: RateLimitConfig{
			LoginPerSecond:   1,
			LoginBurst:       5,
			AccountPerSecond: 10,
			AccountBurst:     20,
		},
		MigrationsPath: "file://migrations",
	}
}

// Load reads .env (if present), then CONFIG_FILE (if set), then applies
// environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.Port, "PORT")

	setString(&cfg.DB.Host, "DB_HOST")
	setString(&cfg.DB.Port, "DB_PORT")
	setString(&cfg.DB.User, "DB_USER")
	setString(&cfg.DB.Password, "DB_PASSWORD")
	setString(&cfg.DB.Name, "DB_NAME")
	setString(&cfg.DB.SSLMode, "DB_SSLMODE")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	if v := os.Getenv("JWT_ACCESS_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWT.AccessTTL = d
		}
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	setString(&cfg.Kafka.AuditTopic, "KAFKA_AUDIT_TOPIC")

	if v := os.Getenv("LOGIN_RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit.LoginPerSecond = f
		}
	}
	if v := os.Getenv("LOGIN_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.LoginBurst = n
		}
	}

	if v := os.Getenv("ACCOUNT_RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit.AccountPerSecond = f
		}
	}
	if v := os.Getenv("ACCOUNT_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.AccountBurst = n
		}
	}

	setString(&cfg.MigrationsPath, "MIGRATIONS_PATH")
}

func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DB.User == "" || c.DB.Name == "" {
		errs = append(errs, errors.New("DB_USER and DB_NAME are required"))
	}
	if c.JWT.AccessTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
