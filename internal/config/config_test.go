package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "shopuser")
		t.Setenv("DB_PASSWORD", "shoppass")
		t.Setenv("DB_NAME", "bakery")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("APP_ENV", "test")
		t.Setenv("ADMIN_PIN", "1234")
		t.Setenv("TAX_RATE", "0.10")
		t.Setenv("STATE_DIR", "/tmp/suseli")

		cfg := Load()

		assert.NotNil(t, cfg)
		assert.Equal(t, "db.internal", cfg.DBHost)
		assert.Equal(t, "shopuser", cfg.DBUser)
		assert.Equal(t, "shoppass", cfg.DBPassword)
		assert.Equal(t, "bakery", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "1234", cfg.AdminPIN)
		assert.Equal(t, 0.10, cfg.TaxRate)
		assert.Equal(t, "/tmp/suseli", cfg.StateDir)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("ADMIN_PIN", "")
		t.Setenv("TAX_RATE", "")

		cfg := Load()

		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, DefaultAdminPIN, cfg.AdminPIN)
		assert.Equal(t, DefaultTaxRate, cfg.TaxRate)
	})

	t.Run("Invalid tax rate falls back", func(t *testing.T) {
		t.Setenv("TAX_RATE", "not-a-number")

		cfg := Load()
		assert.Equal(t, DefaultTaxRate, cfg.TaxRate)
	})
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBUser:     "test_user",
		DBPassword: "test_password",
		DBName:     "test_db",
		DBPort:     "5432",
	}

	expected := "host=localhost user=test_user password=test_password dbname=test_db port=5432 sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}
