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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
seats:
  random_attempts: 50
kafka:
  brokers: ["localhost:9092"]
  ticket_topic: tickets
  notifications_topic: notifications
  group_id: notifier
redis:
  addr: localhost:6379
  db: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 50, cfg.Seats.RandomAttempts)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "notifications", cfg.Kafka.NotificationsTopic)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Worker.DedupTTL())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "log: [unterminated")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	t.Run("implicit path falls back", func(t *testing.T) {
		cfg, err := LoadOrDefault(missing, false)
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.Seats.RandomAttempts)
		assert.False(t, cfg.Kafka.Enabled())
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		cfg, err := LoadOrDefault(missing, true)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(PathEnv, "/etc/ticketoffice.yaml")
		path, explicit := ResolvePath("custom.yaml", true)
		assert.Equal(t, "custom.yaml", path)
		assert.True(t, explicit)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(PathEnv, "/etc/ticketoffice.yaml")
		path, explicit := ResolvePath(DefaultPath, false)
		assert.Equal(t, "/etc/ticketoffice.yaml", path)
		assert.True(t, explicit)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		path, explicit := ResolvePath(DefaultPath, false)
		assert.Equal(t, DefaultPath, path)
		assert.False(t, explicit)
	})
}
