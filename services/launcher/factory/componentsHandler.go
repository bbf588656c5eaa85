package factory

import (
	"os"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/browser"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/engine"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/environment"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/process"
)

type componentsHandler struct {
	directorySelector engine.DirectorySelector
	activator         engine.EnvironmentActivator
	starter           engine.ProcessStarter
	opener            engine.BrowserOpener
	reaper            engine.ProcessReaper
	engine            Engine
}

// NewComponentsHandler creates a new components handler for the provided profile. Signals received
// on the channel interrupt the startup delay and are forwarded to the entry point
func NewComponentsHandler(
	profile config.ProfileConfig,
	baseEnv []string,
	signals <-chan os.Signal,
) (*componentsHandler, error) {
	ch := &componentsHandler{
		directorySelector: environment.NewDirectorySelector(),
		activator:         environment.NewEnvironmentActivator(baseEnv),
		starter:           process.NewProcessStarter(),
		opener:            browser.NewBrowserOpener(),
		reaper:            process.NewProcessReaper(signals),
	}

	eng, err := engine.NewLauncherEngine(engine.ArgsLauncherEngine{
		Profile:           profile,
		DirectorySelector: ch.directorySelector,
		Activator:         ch.activator,
		Starter:           ch.starter,
		Opener:            ch.opener,
		Reaper:            ch.reaper,
		Signals:           signals,
	})
	if err != nil {
		return nil, err
	}
	ch.engine = eng

	return ch, nil
}

// GetDirectorySelector returns the directory selector component
func (ch *componentsHandler) GetDirectorySelector() engine.DirectorySelector {
	return ch.directorySelector
}

// GetActivator returns the environment activator component
func (ch *componentsHandler) GetActivator() engine.EnvironmentActivator {
	return ch.activator
}

// GetStarter returns the process starter component
func (ch *componentsHandler) GetStarter() engine.ProcessStarter {
	return ch.starter
}

// GetOpener returns the browser opener component
func (ch *componentsHandler) GetOpener() engine.BrowserOpener {
	return ch.opener
}

// GetReaper returns the process reaper component
func (ch *componentsHandler) GetReaper() engine.ProcessReaper {
	return ch.reaper
}

// GetEngine returns the engine component
func (ch *componentsHandler) GetEngine() Engine {
	return ch.engine
}

// Launch runs the launch sequence and returns the entry point's exit code
func (ch *componentsHandler) Launch() int {
	return ch.engine.Launch()
}
