package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the redis host
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("redis:\n  host: cache\n"), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the rest falls back to defaults
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "8000", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "game_session", conf.Session.CookieName)
		assert.Equal(t, 24*time.Hour, conf.Session.TTL)
		assert.Equal(t, 500*time.Millisecond, conf.Opponent.ThinkingDelay)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"9090\"\n"), 0o600))
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("OPPONENT_THINKING_DELAY", "0s")

		conf := MustLoad(path)

		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Zero(t, conf.Opponent.ThinkingDelay)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
