package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	UI       UI     `yaml:"ui"`
}

type UI struct {
	ShowCellNumbers bool `yaml:"show-cell-numbers" env:"UI_SHOW_CELL_NUMBERS" env-default:"true"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine: the app then runs on environment variables and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if err == nil {
		return config
	}

	if !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err = cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment config: %w", err))
	}

	return config
}
