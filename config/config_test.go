package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment/config"
)

func TestLoad_MemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DB_TIMEOUT_SEC", "")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/fulfilment?sslmode=disable")
	t.Setenv("DB_TIMEOUT_SEC", "2")
	t.Setenv("LOCATION_CACHE_TTL_MIN", "30")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 30*time.Minute, cfg.LocationCacheTTL)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
}

func TestLoad_Fail_PostgresWithoutURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_Fail_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()

	assert.Error(t, err)
}
