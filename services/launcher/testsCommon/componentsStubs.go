package testsCommon

import (
	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
)

// DirectorySelectorStub -
type DirectorySelectorStub struct {
	SelectHandler func(dir string) string
}

// Select -
func (stub *DirectorySelectorStub) Select(dir string) string {
	if stub.SelectHandler != nil {
		return stub.SelectHandler(dir)
	}

	return dir
}

// IsInterfaceNil -
func (stub *DirectorySelectorStub) IsInterfaceNil() bool {
	return stub == nil
}

// EnvironmentActivatorStub -
type EnvironmentActivatorStub struct {
	ActivateHandler func(cfg config.EnvironmentConfig) []string
}

// Activate -
func (stub *EnvironmentActivatorStub) Activate(cfg config.EnvironmentConfig) []string {
	if stub.ActivateHandler != nil {
		return stub.ActivateHandler(cfg)
	}

	return nil
}

// IsInterfaceNil -
func (stub *EnvironmentActivatorStub) IsInterfaceNil() bool {
	return stub == nil
}

// ProcessStarterStub -
type ProcessStarterStub struct {
	StartHandler func(spec common.LaunchSpec) (common.Process, error)
}

// Start -
func (stub *ProcessStarterStub) Start(spec common.LaunchSpec) (common.Process, error) {
	if stub.StartHandler != nil {
		return stub.StartHandler(spec)
	}

	return &ProcessStub{}, nil
}

// IsInterfaceNil -
func (stub *ProcessStarterStub) IsInterfaceNil() bool {
	return stub == nil
}

// BrowserOpenerStub -
type BrowserOpenerStub struct {
	OpenHandler func(url string) error
}

// Open -
func (stub *BrowserOpenerStub) Open(url string) error {
	if stub.OpenHandler != nil {
		return stub.OpenHandler(url)
	}

	return nil
}

// IsInterfaceNil -
func (stub *BrowserOpenerStub) IsInterfaceNil() bool {
	return stub == nil
}

// ProcessReaperStub -
type ProcessReaperStub struct {
	ReapHandler func(proc common.Process) int
}

// Reap -
func (stub *ProcessReaperStub) Reap(proc common.Process) int {
	if stub.ReapHandler != nil {
		return stub.ReapHandler(proc)
	}

	return proc.Wait()
}

// IsInterfaceNil -
func (stub *ProcessReaperStub) IsInterfaceNil() bool {
	return stub == nil
}
