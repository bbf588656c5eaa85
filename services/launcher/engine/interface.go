package engine

import (
	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
)

// DirectorySelector defines the component resolving the entry point's working directory
type DirectorySelector interface {
	// Select returns the directory to start the entry point in, or empty to keep the current one
	Select(dir string) string
	IsInterfaceNil() bool
}

// EnvironmentActivator defines the component building the entry point's environment
type EnvironmentActivator interface {
	Activate(cfg config.EnvironmentConfig) []string
	IsInterfaceNil() bool
}

// ProcessStarter defines the component starting the entry point in background
type ProcessStarter interface {
	Start(spec common.LaunchSpec) (common.Process, error)
	IsInterfaceNil() bool
}

// BrowserOpener defines the component opening the application URL
type BrowserOpener interface {
	Open(url string) error
	IsInterfaceNil() bool
}

// ProcessReaper defines the component waiting on the background process
type ProcessReaper interface {
	Reap(proc common.Process) int
	IsInterfaceNil() bool
}
