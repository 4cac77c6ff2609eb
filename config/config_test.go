package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_DRIVER", "PORT", "BCRYPT_COST", "DB_NAME", "RATE_LIMIT_ENABLED"} {
		_ = os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "ourstory", cfg.DBName)
	assert.True(t, cfg.RateLimitEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "ReDiS")
	t.Setenv("PORT", "9090")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := Load()
	assert.Equal(t, DriverRedis, cfg.StorageDriver)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.RateLimitEnabled)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	cfg := Load()
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestValidateStorageDriver(t *testing.T) {
	for _, driver := range []string{DriverPostgres, DriverRedis} {
		t.Setenv("STORAGE_DRIVER", driver)
		assert.NoError(t, Load().Validate())
	}

	t.Setenv("STORAGE_DRIVER", "postgress")
	err := Load().Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "postgress")
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "diary")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "stories")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t, "postgres://diary:pw@db.internal:5433/stories?sslmode=require", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://ourstory.example , https://www.ourstory.example ,")
	cfg := Load()
	assert.Equal(t, []string{"https://ourstory.example", "https://www.ourstory.example"}, cfg.CORSOrigins())
}
