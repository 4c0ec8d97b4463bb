package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultTaxRate is the fixed sales tax applied at checkout.
const DefaultTaxRate = 0.085

// DefaultAdminPIN gates the admin views. It ships inside the client and is
// not a secret; the admin gate is cosmetic (see internal/admin).
const DefaultAdminPIN = "3690"

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppEnv     string
	AdminPIN   string
	TaxRate    float64
	StateDir   string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "suseli"),
		DBPort:     getenv("DB_PORT", "5432"),
		AppEnv:     getenv("APP_ENV", "development"),
		AdminPIN:   getenv("ADMIN_PIN", DefaultAdminPIN),
		TaxRate:    DefaultTaxRate,
		StateDir:   getenv("STATE_DIR", ".suseli"),
	}

	if raw := os.Getenv("TAX_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate >= 0 {
			cfg.TaxRate = rate
		}
	}

	return cfg
}

// DSN builds the Postgres connection string for both the database pool and
// the notification listener.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
