package process

import (
	"os"

	"github.com/iulianpascalau/xrd-launcher/services/launcher/common"
)

type processReaper struct {
	signals <-chan os.Signal
}

// NewProcessReaper creates a reaper that forwards the signals received on the provided channel
// to the process it waits on
func NewProcessReaper(signals <-chan os.Signal) *processReaper {
	return &processReaper{
		signals: signals,
	}
}

// Reap waits for the process to exit and returns its exit code
func (pr *processReaper) Reap(proc common.Process) int {
	done := make(chan int, 1)
	go func() {
		done <- proc.Wait()
	}()

	for {
		select {
		case sig := <-pr.signals:
			log.Info("forwarding signal to background process", "signal", sig.String(), "pid", proc.Pid())
			err := proc.Signal(sig)
			if err != nil {
				log.Warn("failed to forward signal", "signal", sig.String(), "error", err)
			}
		case code := <-done:
			return code
		}
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (pr *processReaper) IsInterfaceNil() bool {
	return pr == nil
}
