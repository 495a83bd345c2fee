package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsmart/pkg/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB_NAME", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_TTL_HOURS", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "spendsmart", cfg.MongoDBName)
	assert.Equal(t, "spendsmart", cfg.JWTIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_DB_NAME", "finance")
	t.Setenv("JWT_TTL_HOURS", "1")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "finance", cfg.MongoDBName)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}

func TestLoadDatabaseNameFromURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("uri path wins over env", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017/proddb")
		t.Setenv("MONGO_DB_NAME", "finance")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "proddb", cfg.MongoDBName)
	})

	t.Run("env applies when uri has no path", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DB_NAME", "finance")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "finance", cfg.MongoDBName)
	})

	t.Run("uri path with options", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017/proddb?retryWrites=true")
		t.Setenv("MONGO_DB_NAME", "")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "proddb", cfg.MongoDBName)
	})
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
