package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidFirstMark = errors.New("invalid first mark")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	FirstMark string `yaml:"first-mark" env:"FIRST_MARK" env-default:"X"`
	Prompt    string `yaml:"prompt" env:"PROMPT" env-default:"> "`
}

// MustLoad - load all configurations from the yml file, env variables override it.
// Without the file only env variables and defaults are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)

	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	if _, err := that.Mark(); err != nil {
		return err
	}

	return nil
}

func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
}

// Mark - the mark that moves first in every game.
func (that *Config) Mark() (tictactoe.Cell, error) {
	var mark tictactoe.Cell
	if err := mark.UnmarshalText([]byte(that.FirstMark)); err != nil || mark == tictactoe.Empty {
		return tictactoe.Empty, fmt.Errorf("%w: %q", ErrInvalidFirstMark, that.FirstMark)
	}

	return mark, nil
}
