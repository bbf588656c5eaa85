package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
DefaultProfile = "default"

[[Profiles]]
    Name = "default"
    AppDirectory = "~/xrd"
    Command = "python"
    Args = ["main.py"]
    StartupDelayInMillis = 3000
    URL = "http://127.0.0.1:8050/"
    [Profiles.Environment]
        Kind = "conda"
        Name = "xrd"

[[Profiles]]
    Name = "plain"
    AppDirectory = "/opt/xrd"
    Command = "python3"
    Args = ["main.py"]
    StartupDelayInMillis = 2000
    URL = "http://127.0.0.1:8050"
    SkipBrowser = true
`

func TestConfig(t *testing.T) {
	t.Parallel()

	expectedCfg := Config{
		DefaultProfile: "default",
		Profiles: []ProfileConfig{
			{
				Name:                 "default",
				AppDirectory:         "~/xrd",
				Command:              "python",
				Args:                 []string{"main.py"},
				StartupDelayInMillis: 3000,
				URL:                  "http://127.0.0.1:8050/",
				Environment: EnvironmentConfig{
					Kind: "conda",
					Name: "xrd",
				},
			},
			{
				Name:                 "plain",
				AppDirectory:         "/opt/xrd",
				Command:              "python3",
				Args:                 []string{"main.py"},
				StartupDelayInMillis: 2000,
				URL:                  "http://127.0.0.1:8050",
				SkipBrowser:          true,
			},
		},
	}

	cfg := Config{}

	err := toml.Unmarshal([]byte(testConfig), &cfg)
	assert.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
	t.Run("invalid TOML should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("DefaultProfile = "), 0o600))

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to decode config file")
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "default", cfg.DefaultProfile)
		assert.Len(t, cfg.Profiles, 2)
	})
}

func TestConfig_Profile(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	require.NoError(t, toml.Unmarshal([]byte(testConfig), cfg))

	t.Run("empty name selects the default profile", func(t *testing.T) {
		t.Parallel()

		profile, err := cfg.Profile("")
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8050/", profile.URL)
	})
	t.Run("named profile", func(t *testing.T) {
		t.Parallel()

		profile, err := cfg.Profile("plain")
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8050", profile.URL)
		assert.Equal(t, uint32(2000), profile.StartupDelayInMillis)
	})
	t.Run("unknown profile should error", func(t *testing.T) {
		t.Parallel()

		_, err := cfg.Profile("missing")
		assert.True(t, errors.Is(err, ErrProfileNotFound))
	})
	t.Run("profile without command should error", func(t *testing.T) {
		t.Parallel()

		local := &Config{Profiles: []ProfileConfig{{Name: "a", URL: "http://127.0.0.1:8050"}}}
		_, err := local.Profile("a")
		assert.True(t, errors.Is(err, ErrEmptyCommand))
	})
	t.Run("profile without URL should error", func(t *testing.T) {
		t.Parallel()

		local := &Config{Profiles: []ProfileConfig{{Name: "a", Command: "python"}}}
		_, err := local.Profile("a")
		assert.True(t, errors.Is(err, ErrEmptyURL))
	})
}
