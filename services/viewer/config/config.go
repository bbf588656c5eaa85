package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FigureConfig defines the figure processing constants
type FigureConfig struct {
	SmoothingSigma  float64 `toml:"SmoothingSigma"`
	DefaultAngleMin int     `toml:"DefaultAngleMin"`
	DefaultAngleMax int     `toml:"DefaultAngleMax"`
}

// Config maps to the config.toml file for the viewer service
type Config struct {
	ListenAddress    string       `toml:"ListenAddress"`
	DatabasePath     string       `toml:"DatabasePath"`
	RetentionSeconds int          `toml:"RetentionSeconds"`
	MaxUploadSizeMB  int          `toml:"MaxUploadSizeMB"`
	PlotlyBundlePath string       `toml:"PlotlyBundlePath"`
	Figure           FigureConfig `toml:"Figure"`
}

// LoadConfig parses a TOML file into the Config struct
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}
