package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// When: the config file does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "X", conf.FirstMark)
		assert.Equal(t, "> ", conf.Prompt)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\nfirst-mark: o\nprompt: \"? \"\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "? ", conf.Prompt)

		mark, err := conf.Mark()
		require.NoError(t, err)
		assert.Equal(t, tictactoe.MarkO, mark)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: debug\nfirst-mark: X\n")
		t.Setenv("FIRST_MARK", "O")
		t.Setenv("LOG_LEVEL", "warn")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "O", conf.FirstMark)

		level, err := conf.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, level)
	})

	t.Run("Rejects an unknown first mark", func(t *testing.T) {
		path := writeConfig(t, "first-mark: Z\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidFirstMark)
	})

	t.Run("Stat errors other than a missing file are returned", func(t *testing.T) {
		// Given: a path below a regular file, so it can not be stat'ed as "not exist"
		parent := writeConfig(t, "first-mark: X\n")

		// When: the config is loaded from it
		_, err := Load(filepath.Join(parent, "config.yml"))

		// Then: the error is returned instead of falling back to env
		require.Error(t, err)
		assert.NotErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to stat config file")
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}

func TestConfig_Mark(t *testing.T) {
	conf := &Config{FirstMark: " "}

	_, err := conf.Mark()

	require.ErrorIs(t, err, ErrInvalidFirstMark)
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "first-mark: Q\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
