package environment

import (
	"os"
	"path/filepath"
	"strings"
)

type directorySelector struct{}

// NewDirectorySelector creates the component that resolves the entry point's working directory
func NewDirectorySelector() *directorySelector {
	return &directorySelector{}
}

// Select returns the absolute application directory. An empty string means the launcher's
// own working directory is kept, which also happens when the configured one is unusable
func (ds *directorySelector) Select(dir string) string {
	if len(dir) == 0 {
		return ""
	}

	expanded := expandHome(dir)
	info, err := os.Stat(expanded)
	if err != nil {
		log.Warn("application directory is not accessible, staying in the current directory", "directory", dir, "error", err)
		return ""
	}
	if !info.IsDir() {
		log.Warn("application directory is not a directory, staying in the current directory", "directory", dir)
		return ""
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		log.Warn("cannot resolve application directory, staying in the current directory", "directory", dir, "error", err)
		return ""
	}

	log.Debug("selected application directory", "directory", abs)

	return abs
}

// IsInterfaceNil returns true if the value under the interface is nil
func (ds *directorySelector) IsInterfaceNil() bool {
	return ds == nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
