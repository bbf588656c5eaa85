package factory

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponentsHandler(t *testing.T) {
	t.Parallel()

	handler, err := NewComponentsHandler(config.ProfileConfig{}, nil, nil)

	assert.NotNil(t, handler)
	assert.Nil(t, err)
}

func TestComponentsHandlerMethods(t *testing.T) {
	t.Parallel()

	handler, _ := NewComponentsHandler(config.ProfileConfig{}, nil, nil)

	assert.Equal(t, "*environment.directorySelector", fmt.Sprintf("%T", handler.GetDirectorySelector()))
	assert.Equal(t, "*environment.environmentActivator", fmt.Sprintf("%T", handler.GetActivator()))
	assert.Equal(t, "*process.processStarter", fmt.Sprintf("%T", handler.GetStarter()))
	assert.Equal(t, "*browser.browserOpener", fmt.Sprintf("%T", handler.GetOpener()))
	assert.Equal(t, "*process.processReaper", fmt.Sprintf("%T", handler.GetReaper()))
	assert.Equal(t, "*engine.launcherEngine", fmt.Sprintf("%T", handler.GetEngine()))
}

func TestComponentsHandler_Launch(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	_, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	profile := config.ProfileConfig{
		Name:                 "test",
		AppDirectory:         t.TempDir(),
		Command:              "sh",
		Args:                 []string{"-c", "exit 5"},
		StartupDelayInMillis: 1,
		URL:                  "http://127.0.0.1:8050/",
		SkipBrowser:          true,
	}

	handler, err := NewComponentsHandler(profile, []string{"PATH=" + os.Getenv("PATH")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, handler.Launch())
}

func TestComponentsHandler_LaunchFromCondaEnvironment(t *testing.T) {
	// not parallel: a concurrent fork could keep the freshly written executable busy
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	_, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	condaRoot := t.TempDir()
	envBin := filepath.Join(condaRoot, "envs", "xrd", "bin")
	require.NoError(t, os.MkdirAll(envBin, 0o755))
	script := "#!/bin/sh\n[ \"$CONDA_DEFAULT_ENV\" = \"xrd\" ] || exit 1\nexit 9\n"
	require.NoError(t, os.WriteFile(filepath.Join(envBin, "xrdpython"), []byte(script), 0o755))

	profile := config.ProfileConfig{
		Name:                 "conda",
		AppDirectory:         t.TempDir(),
		Command:              "xrdpython",
		StartupDelayInMillis: 1,
		URL:                  "http://127.0.0.1:8050/",
		SkipBrowser:          true,
		Environment: config.EnvironmentConfig{
			Kind: "conda",
			Name: "xrd",
			Root: condaRoot,
		},
	}

	handler, err := NewComponentsHandler(profile, []string{"PATH=" + os.Getenv("PATH")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9, handler.Launch())
}
