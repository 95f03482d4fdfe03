package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Window   WindowConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type AuthConfig struct {
	JWTSecret string
}

// WindowSource picks the anchor table for the punch time-window check:
// "fixed" uses the company-wide schedule, "user" uses the employee's own
// configured shift times (falling back to fixed when a field is unset).
type WindowConfig struct {
	Enforce bool
	Source  string
}

const (
	WindowSourceFixed = "fixed"
	WindowSourceUser  = "user"
)

type ReportConfig struct {
	Dir string
}

// Load reads configuration from environment variables with sane
// defaults. Precedence: environment > defaults. godotenv in main fills
// the environment from .env during local development.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "check_time")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKER", "")

	v.SetDefault("JWT_SECRET", "")

	v.SetDefault("ENFORCE_TIME_WINDOW", false)
	v.SetDefault("TIME_WINDOW_SOURCE", WindowSourceFixed)

	v.SetDefault("REPORT_DIR", "reports")

	cfg := &Config{
		AppEnv: v.GetString("APP_ENV"),
		Port:   v.GetString("PORT"),
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker: v.GetString("KAFKA_BROKER"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Window: WindowConfig{
			Enforce: v.GetBool("ENFORCE_TIME_WINDOW"),
			Source:  v.GetString("TIME_WINDOW_SOURCE"),
		},
		Report: ReportConfig{
			Dir: v.GetString("REPORT_DIR"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Window.Source != WindowSourceFixed && cfg.Window.Source != WindowSourceUser {
		return nil, fmt.Errorf("invalid TIME_WINDOW_SOURCE: %s", cfg.Window.Source)
	}

	return cfg, nil
}
