package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

const DefaultDSN = "FlightManagement.db"

type Config struct {
	Database struct {
		DSN string `toml:"dsn"`
	} `toml:"database"`

	Display struct {
		TimestampFormat string `toml:"timestamp_format"`
		Color           bool   `toml:"color"`
	} `toml:"display"`

	Metrics struct {
		Textfile string `toml:"textfile"`
	} `toml:"metrics"`
}

func DefaultConfig() *Config {
	var config Config
	config.Database.DSN = DefaultDSN
	config.Display.TimestampFormat = "2006-01-02 15:04"
	config.Display.Color = true
	return &config
}

// LoadConfig reads path over the defaults. A missing file is not an error,
// the defaults are used as they are.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug.Printf("Config %s not found, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Database.DSN == "" {
		return nil, fmt.Errorf("Database DSN is not specified in config, use a value like %q", DefaultDSN)
	}
	if config.Display.TimestampFormat == "" {
		config.Display.TimestampFormat = DefaultConfig().Display.TimestampFormat
	}

	logger.Debug.Printf("Loaded config: %+v", *config)

	return config, nil
}
