package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestLevelFromEnv(t *testing.T) {
	t.Run("defaults to info when unset", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_LEVEL", "")
		require.Equal(t, zerolog.InfoLevel, levelFromEnv())
	})

	t.Run("parses a valid level", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_LEVEL", "debug")
		require.Equal(t, zerolog.DebugLevel, levelFromEnv())
	})

	t.Run("falls back to info on garbage", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_LEVEL", "loud")
		require.Equal(t, zerolog.InfoLevel, levelFromEnv())
	})
}

func TestFileWriterFromEnv(t *testing.T) {
	t.Run("nil when no file configured", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_FILE", "")
		require.Nil(t, fileWriterFromEnv())
	})

	t.Run("honors rotation knobs", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_FILE", filepath.Join(t.TempDir(), "toolbelt.log"))
		t.Setenv("TOOLBELT_LOG_MAX_SIZE", "5")
		t.Setenv("TOOLBELT_LOG_MAX_BACKUPS", "0")
		t.Setenv("TOOLBELT_LOG_MAX_AGE", "7")

		writer := fileWriterFromEnv()
		require.NotNil(t, writer)

		config, ok := writer.(*lumberjack.Logger)
		require.True(t, ok)
		require.Equal(t, 5, config.MaxSize)
		require.Equal(t, 0, config.MaxBackups)
		require.Equal(t, 7, config.MaxAge)
	})

	t.Run("ignores invalid knobs", func(t *testing.T) {
		t.Setenv("TOOLBELT_LOG_FILE", filepath.Join(t.TempDir(), "toolbelt.log"))
		t.Setenv("TOOLBELT_LOG_MAX_SIZE", "-1")

		config, ok := fileWriterFromEnv().(*lumberjack.Logger)
		require.True(t, ok)
		require.Equal(t, 1, config.MaxSize)
	})
}
