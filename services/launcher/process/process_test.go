package process

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func skipIfNoShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	_, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
}

func shellSpec(script string, dir string, env ...string) common.LaunchSpec {
	return common.LaunchSpec{
		Directory: dir,
		Env:       append([]string{"PATH=" + os.Getenv("PATH")}, env...),
		Command:   "sh",
		Args:      []string{"-c", script},
	}
}

func TestProcessStarter_Start(t *testing.T) {
	ps := NewProcessStarter()
	assert.False(t, ps.IsInterfaceNil())

	t.Run("empty command should error", func(t *testing.T) {
		proc, err := ps.Start(common.LaunchSpec{})
		assert.Nil(t, proc)
		assert.Equal(t, errEmptyCommand, err)
	})
	t.Run("missing executable should error", func(t *testing.T) {
		proc, err := ps.Start(common.LaunchSpec{Command: "xrd-launcher-missing-binary"})
		assert.Nil(t, proc)
		assert.Contains(t, err.Error(), "failed to start xrd-launcher-missing-binary")
	})
	t.Run("runs in the selected directory with the provided environment", func(t *testing.T) {
		skipIfNoShell(t)

		dir := t.TempDir()
		proc, err := ps.Start(shellSpec(`echo "$XRD_MARKER" > marker.txt`, dir, "XRD_MARKER=activated"))
		require.NoError(t, err)
		assert.Greater(t, proc.Pid(), 0)
		assert.Equal(t, 0, proc.Wait())

		contents, err := os.ReadFile(filepath.Join(dir, "marker.txt"))
		require.NoError(t, err)
		assert.Equal(t, "activated\n", string(contents))
	})
}

func TestBackgroundProcess_Wait(t *testing.T) {
	skipIfNoShell(t)

	ps := NewProcessStarter()

	t.Run("exit code is propagated", func(t *testing.T) {
		proc, err := ps.Start(shellSpec("exit 7", ""))
		require.NoError(t, err)
		assert.Equal(t, 7, proc.Wait())
		// subsequent calls return the same code
		assert.Equal(t, 7, proc.Wait())
	})
	t.Run("signaled process reports 128+N", func(t *testing.T) {
		proc, err := ps.Start(shellSpec("sleep 10", ""))
		require.NoError(t, err)

		require.NoError(t, proc.Signal(syscall.SIGKILL))
		assert.Equal(t, 128+int(syscall.SIGKILL), proc.Wait())
	})
}

func TestProcessReaper_Reap(t *testing.T) {
	skipIfNoShell(t)

	ps := NewProcessStarter()

	t.Run("returns the exit code of the process", func(t *testing.T) {
		pr := NewProcessReaper(nil)
		assert.False(t, pr.IsInterfaceNil())

		proc, err := ps.Start(shellSpec("sleep 0.1; exit 3", ""))
		require.NoError(t, err)
		assert.Equal(t, 3, pr.Reap(proc))
	})
	t.Run("forwards received signals", func(t *testing.T) {
		signals := make(chan os.Signal, 1)
		pr := NewProcessReaper(signals)

		proc, err := ps.Start(shellSpec("exec sleep 10", ""))
		require.NoError(t, err)

		go func() {
			time.Sleep(50 * time.Millisecond)
			signals <- syscall.SIGTERM
		}()

		assert.Equal(t, 128+int(syscall.SIGTERM), pr.Reap(proc))
	})
}

func writeExecutable(t *testing.T, dir string, name string, script string) string {
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	return path
}

func TestProcessStarter_StartResolvesOnProcessPath(t *testing.T) {
	skipIfNoShell(t)

	ps := NewProcessStarter()

	t.Run("command found only in the activated environment", func(t *testing.T) {
		envBin := filepath.Join(t.TempDir(), "envs", "xrd", "bin")
		writeExecutable(t, envBin, "xrdpython", "exit 9")

		proc, err := ps.Start(common.LaunchSpec{
			Env:     []string{"PATH=" + envBin + string(os.PathListSeparator) + os.Getenv("PATH")},
			Command: "xrdpython",
		})
		require.NoError(t, err)
		assert.Equal(t, 9, proc.Wait())
	})
	t.Run("activated environment shadows the launcher's PATH", func(t *testing.T) {
		envBin := filepath.Join(t.TempDir(), "bin")
		writeExecutable(t, envBin, "sh", "exit 11")

		proc, err := ps.Start(common.LaunchSpec{
			Env:     []string{"PATH=" + envBin + string(os.PathListSeparator) + os.Getenv("PATH")},
			Command: "sh",
			Args:    []string{"-c", "exit 0"},
		})
		require.NoError(t, err)
		assert.Equal(t, 11, proc.Wait())
	})
	t.Run("falls back on the launcher's PATH", func(t *testing.T) {
		proc, err := ps.Start(common.LaunchSpec{
			Env:     []string{"PATH=" + t.TempDir()},
			Command: "sh",
			Args:    []string{"-c", "exit 4"},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, proc.Wait())
	})
}

func TestResolveCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX permission bits")
	}

	t.Parallel()

	dir := t.TempDir()
	executable := writeExecutable(t, filepath.Join(dir, "bin"), "xrdpython", "exit 0")
	notExecutable := filepath.Join(dir, "data", "xrdpython")
	require.NoError(t, os.MkdirAll(filepath.Dir(notExecutable), 0o755))
	require.NoError(t, os.WriteFile(notExecutable, []byte("exit 0"), 0o644))

	t.Run("no PATH in the environment", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "xrdpython", resolveCommand("xrdpython", []string{"HOME=" + dir}))
	})
	t.Run("command with a separator is kept", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "./xrdpython", resolveCommand("./xrdpython", []string{"PATH=" + filepath.Dir(executable)}))
	})
	t.Run("non executable files are skipped", func(t *testing.T) {
		t.Parallel()

		env := []string{"PATH=" + filepath.Dir(notExecutable) + string(os.PathListSeparator) + filepath.Dir(executable)}
		assert.Equal(t, executable, resolveCommand("xrdpython", env))
	})
	t.Run("relative entries are skipped", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "xrdpython", resolveCommand("xrdpython", []string{"PATH=bin"}))
	})
	t.Run("last PATH definition wins", func(t *testing.T) {
		t.Parallel()

		env := []string{"PATH=" + filepath.Dir(notExecutable), "PATH=" + filepath.Dir(executable)}
		assert.Equal(t, executable, resolveCommand("xrdpython", env))
	})
}
