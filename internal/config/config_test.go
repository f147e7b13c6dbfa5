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
	t.Run("Defaults fill missing sections", func(t *testing.T) {
		// Given
		path := writeConfig(t, "jwt-secret-key: secret\n")

		// When
		conf, err := Load(path)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.Match.BoardSize)
		assert.Equal(t, 30*time.Second, conf.Match.TurnTimeout)
		assert.Equal(t, 24*time.Hour, conf.Match.Retention)
		assert.Equal(t, 1200, conf.Rating.Base)
		assert.Equal(t, "hard", conf.Rating.PvPDifficulty)
		assert.Equal(t, 10, conf.Search.ExhaustiveLimit)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("File values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
jwt-secret-key: secret
match:
  board-size: 5
  turn-timeout: 1m
rating:
  ai-baseline: 1500
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 5, conf.Match.BoardSize)
		assert.Equal(t, time.Minute, conf.Match.TurnTimeout)
		assert.Equal(t, 1500, conf.Rating.AIBaseline)
	})

	t.Run("Board size out of range is rejected", func(t *testing.T) {
		for _, size := range []string{"2", "9"} {
			path := writeConfig(t, "jwt-secret-key: secret\nmatch:\n  board-size: "+size+"\n")

			_, err := Load(path)

			assert.Error(t, err, size)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		assert.Error(t, err)
	})
}
