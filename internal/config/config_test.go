package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from yaml", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
storage: redis
redis:
  host: cache
  port: "6380"
  db: 2
game-ttl: 30m
bot-delay: 250ms
parallel-search: true
cors-origins:
  - http://localhost:3000
`)

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every field is populated
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, 30*time.Minute, conf.GameTTL)
		assert.Equal(t, 250*time.Millisecond, conf.BotDelay)
		assert.True(t, conf.ParallelSearch)
		assert.Equal(t, []string{"http://localhost:3000"}, conf.CORSOrigins)
	})

	t.Run("Applies defaults for missing values", func(t *testing.T) {
		// Given: a nearly empty config file
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults are used
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.GameTTL)
		assert.Equal(t, 500*time.Millisecond, conf.BotDelay)
		assert.False(t, conf.ParallelSearch)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "http-port: \"8081\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the env value wins
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Unknown storage is rejected", func(t *testing.T) {
		path := writeConfig(t, "storage: etcd\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage")
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
