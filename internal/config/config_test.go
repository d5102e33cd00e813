package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:           "8000",
		DBHost:         "localhost",
		DBPort:         "5432",
		DBUser:         "user",
		DBPassword:     "password",
		DBName:         "aiboard",
		DBSSLMode:      "disable",
		AllowedOrigins: "http://localhost:3010",
		BcryptCost:     10,
		Env:            "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bcrypt cost below minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.BcryptCost = 4
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())

		cfg.DBPassword = "s3cure-and-long-enough"
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotEmpty(t, cfg.Port)
	assert.Equal(t, "http://localhost:3010", cfg.AllowedOrigins)
	assert.GreaterOrEqual(t, cfg.BcryptCost, 10)
}
