package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrProfileNotFound signals that the requested launch profile is not defined
var ErrProfileNotFound = errors.New("profile not found")

// ErrEmptyCommand signals that a profile does not define the entry point command
var ErrEmptyCommand = errors.New("empty command")

// ErrEmptyURL signals that a profile does not define the URL to be opened
var ErrEmptyURL = errors.New("empty URL")

// EnvironmentConfig defines the runtime environment activated before the entry point is started
type EnvironmentConfig struct {
	Kind    string `toml:"Kind"`
	Name    string `toml:"Name"`
	Path    string `toml:"Path"`
	Root    string `toml:"Root"`
	EnvFile string `toml:"EnvFile"`
}

// ProfileConfig defines a complete launch sequence
type ProfileConfig struct {
	Name                 string            `toml:"Name"`
	AppDirectory         string            `toml:"AppDirectory"`
	Command              string            `toml:"Command"`
	Args                 []string          `toml:"Args"`
	StartupDelayInMillis uint32            `toml:"StartupDelayInMillis"`
	URL                  string            `toml:"URL"`
	SkipBrowser          bool              `toml:"SkipBrowser"`
	Environment          EnvironmentConfig `toml:"Environment"`
}

// Config maps to the config.toml file for the launcher
type Config struct {
	DefaultProfile string          `toml:"DefaultProfile"`
	Profiles       []ProfileConfig `toml:"Profiles"`
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

// Profile returns the profile with the provided name. An empty name selects the default profile
func (cfg *Config) Profile(name string) (ProfileConfig, error) {
	if len(name) == 0 {
		name = cfg.DefaultProfile
	}

	for _, profile := range cfg.Profiles {
		if profile.Name != name {
			continue
		}
		if len(profile.Command) == 0 {
			return ProfileConfig{}, fmt.Errorf("%w for profile %s", ErrEmptyCommand, name)
		}
		if len(profile.URL) == 0 {
			return ProfileConfig{}, fmt.Errorf("%w for profile %s", ErrEmptyURL, name)
		}

		return profile, nil
	}

	return ProfileConfig{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}
