package process

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process")

type processStarter struct{}

// NewProcessStarter creates the component able to start the entry point in background
func NewProcessStarter() *processStarter {
	return &processStarter{}
}

// Start launches the process described by the spec and returns without waiting for it.
// The process shares the launcher's standard streams
func (ps *processStarter) Start(spec common.LaunchSpec) (common.Process, error) {
	if len(spec.Command) == 0 {
		return nil, errEmptyCommand
	}

	command := resolveCommand(spec.Command, spec.Env)
	if command != spec.Command {
		log.Debug("resolved command on the process environment", "command", spec.Command, "path", command)
	}

	cmd := exec.Command(command, spec.Args...)
	cmd.Dir = spec.Directory
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", spec.Command, err)
	}

	log.Info("started background process", "command", spec.Command, "args", spec.Args,
		"directory", spec.Directory, "pid", cmd.Process.Pid)

	return &backgroundProcess{
		cmd: cmd,
	}, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (ps *processStarter) IsInterfaceNil() bool {
	return ps == nil
}
