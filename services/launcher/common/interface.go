package common

import "os"

// Process defines a started background process
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	// Wait blocks until the process exits and returns its exit code as a shell would report it
	Wait() int
	IsInterfaceNil() bool
}
