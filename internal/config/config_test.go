package config_test

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("FE_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_DB", "")
	t.Setenv("POSTGRES_SSLMODE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "http://localhost:3000", cfg.FEURL)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "localhost", cfg.PostgresHost)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "shop", cfg.PostgresDB)
	assert.Equal(t, "disable", cfg.PostgresSSLMode)
}

func TestLoad_MemoryDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.Load()
	require.Error(t, err)
}
