//go:build unit

package config_test

import (
	"testing"
	"time"

	"dormstay/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(driver string) config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "8888"},
		Store:  config.StoreConfig{Driver: driver},
		JWT:    config.JWTConfig{Secret: "secret", Duration: "24h"},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("memory driver needs no DB or payment settings", func(t *testing.T) {
		cfg := baseConfig("memory")
		assert.NoError(t, cfg.Validate())
	})

	t.Run("postgres driver reports every missing setting", func(t *testing.T) {
		cfg := baseConfig("postgres")

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.Contains(t, err.Error(), "DB_NAME")
		assert.Contains(t, err.Error(), "PAYMENT_BASE_URL")
		assert.Contains(t, err.Error(), "PAYMENT_API_KEY")
	})

	t.Run("postgres driver fully configured", func(t *testing.T) {
		cfg := baseConfig("postgres")
		cfg.DB = config.DBConfig{
			Host: "localhost", Port: "5432",
			User: "app", Password: "app", DBName: "dormstay",
			SSLMode: "disable", TimeZone: "UTC",
		}
		cfg.Payment = config.PaymentConfig{
			BaseURL: "https://payments.example.com",
			APIKey:  "key",
			Timeout: 15 * time.Second,
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver is rejected", func(t *testing.T) {
		cfg := baseConfig("sqlite")
		assert.Error(t, cfg.Validate())
	})
}

func TestBuildDSN(t *testing.T) {
	db := config.DBConfig{
		Host: "db", Port: "5433",
		User: "app", Password: "pw", DBName: "dormstay",
		SSLMode: "require", TimeZone: "UTC",
	}
	assert.Equal(t,
		"postgres://app:pw@db:5433/dormstay?sslmode=require&timezone=UTC",
		db.BuildDSN(),
	)
}
