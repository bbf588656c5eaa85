package process

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
)

const signalExitCodeOffset = 128

type backgroundProcess struct {
	cmd      *exec.Cmd
	waitOnce sync.Once
	exitCode int
}

// Pid returns the OS process identifier
func (bp *backgroundProcess) Pid() int {
	return bp.cmd.Process.Pid
}

// Signal sends the provided signal to the process
func (bp *backgroundProcess) Signal(sig os.Signal) error {
	return bp.cmd.Process.Signal(sig)
}

// Wait blocks until the process exits. A process terminated by signal N reports 128+N
func (bp *backgroundProcess) Wait() int {
	bp.waitOnce.Do(func() {
		err := bp.cmd.Wait()
		bp.exitCode = exitCode(err)
		log.Debug("background process exited", "pid", bp.cmd.Process.Pid, "exit code", bp.exitCode)
	})

	return bp.exitCode
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	exitErr := &exec.ExitError{}
	if !errors.As(err, &exitErr) {
		log.Warn("waiting on background process failed", "error", err)
		return 1
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return signalExitCodeOffset + int(status.Signal())
	}

	return exitErr.ExitCode()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (bp *backgroundProcess) IsInterfaceNil() bool {
	return bp == nil
}
