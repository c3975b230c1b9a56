package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables. A .env file, when present, is loaded by main before parsing.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	DBHost         string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string        `env:"DB_PORT" envDefault:"5432"`
	DBUser         string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName         string        `env:"DB_NAME" envDefault:"backoffice"`
	DBSSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxLifetime  time.Duration `env:"DB_MAX_LIFETIME" envDefault:"5m"`

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-this-in-production"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Credentials for the super_admin account seeded when the users table
	// is empty. Seeding is skipped when the password is unset.
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@localhost"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
