// Package config loads the monitor's YAML configuration file. Command line
// flags override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	// Serial device the firmware enumerates as
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// ShowRaw echoes every decoded frame, not just button edges
	ShowRaw bool `yaml:"show_raw"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			Device: "/dev/ttyACM0",
			Baud:   115200,
		},
	}
}

// Load reads and parses a YAML configuration file. Fields missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Monitor.Device == "" {
		return nil, fmt.Errorf("config %s: monitor.device must not be empty", path)
	}
	if cfg.Monitor.Baud <= 0 {
		return nil, fmt.Errorf("config %s: monitor.baud must be positive", path)
	}

	return cfg, nil
}
