package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `env:"PORT" env-default:"8080"`
	DBHost         string `env:"DB_HOST" env-default:"localhost"`
	DBPort         string `env:"DB_PORT" env-default:"5432"`
	DBUser         string `env:"DB_USER" env-default:"ucp"`
	DBPassword     string `env:"DB_PASSWORD" env-default:"ucp_secret"`
	DBName         string `env:"DB_NAME" env-default:"ucp"`
	DBSSLMode      string `env:"DB_SSLMODE" env-default:"disable"`
	AutoMigrate    bool   `env:"AUTO_MIGRATE" env-default:"false"`
	GinMode        string `env:"GIN_MODE" env-default:"debug"`
	DefaultCountry string `env:"PAYMENT_DEFAULT_COUNTRY" env-default:"IN"`
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
