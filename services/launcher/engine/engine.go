package engine

import (
	"errors"
	"os"
	"time"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// CommandNotFoundExitCode is returned when the entry point could not be started at all
const CommandNotFoundExitCode = 127

var log = logger.GetOrCreate("engine")

// ArgsLauncherEngine defines the arguments needed to create a launcher engine
type ArgsLauncherEngine struct {
	Profile           config.ProfileConfig
	DirectorySelector DirectorySelector
	Activator         EnvironmentActivator
	Starter           ProcessStarter
	Opener            BrowserOpener
	Reaper            ProcessReaper
	Signals           <-chan os.Signal
}

// launcherEngine runs the launch sequence: directory, environment, start, delay, browser, wait
type launcherEngine struct {
	profile           config.ProfileConfig
	directorySelector DirectorySelector
	activator         EnvironmentActivator
	starter           ProcessStarter
	opener            BrowserOpener
	reaper            ProcessReaper
	signals           <-chan os.Signal
}

// NewLauncherEngine creates a new engine instance
func NewLauncherEngine(args ArgsLauncherEngine) (*launcherEngine, error) {
	if check.IfNil(args.DirectorySelector) {
		return nil, errors.New("nil directory selector")
	}
	if check.IfNil(args.Activator) {
		return nil, errors.New("nil environment activator")
	}
	if check.IfNil(args.Starter) {
		return nil, errors.New("nil process starter")
	}
	if check.IfNil(args.Opener) {
		return nil, errors.New("nil browser opener")
	}
	if check.IfNil(args.Reaper) {
		return nil, errors.New("nil process reaper")
	}

	return &launcherEngine{
		profile:           args.Profile,
		directorySelector: args.DirectorySelector,
		activator:         args.Activator,
		starter:           args.Starter,
		opener:            args.Opener,
		reaper:            args.Reaper,
		signals:           args.Signals,
	}, nil
}

// Launch runs the whole sequence and returns the exit code of the entry point.
// No step failure stops the sequence
func (e *launcherEngine) Launch() int {
	spec := common.LaunchSpec{
		Directory: e.directorySelector.Select(e.profile.AppDirectory),
		Env:       e.activator.Activate(e.profile.Environment),
		Command:   e.profile.Command,
		Args:      e.profile.Args,
	}

	proc, err := e.starter.Start(spec)
	if err != nil {
		log.Error("entry point could not be started", "command", spec.Command, "error", err)
	}

	sig, interrupted := e.waitStartupDelay()
	switch {
	case interrupted:
		log.Info("launch interrupted, not opening the browser", "signal", sig.String())
		if !check.IfNil(proc) {
			e.forward(proc, sig)
		}
	case e.profile.SkipBrowser:
		log.Debug("browser opening disabled", "profile", e.profile.Name)
	default:
		err = e.opener.Open(e.profile.URL)
		if err != nil {
			log.Warn("could not open the browser", "url", e.profile.URL, "error", err)
		}
	}

	if check.IfNil(proc) {
		return CommandNotFoundExitCode
	}

	return e.reaper.Reap(proc)
}

func (e *launcherEngine) waitStartupDelay() (os.Signal, bool) {
	delay := time.Duration(e.profile.StartupDelayInMillis) * time.Millisecond
	log.Debug("waiting for the entry point to start", "delay", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil, false
	case sig := <-e.signals:
		return sig, true
	}
}

func (e *launcherEngine) forward(proc common.Process, sig os.Signal) {
	err := proc.Signal(sig)
	if err != nil {
		log.Warn("failed to forward signal", "signal", sig.String(), "error", err)
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *launcherEngine) IsInterfaceNil() bool {
	return e == nil
}
