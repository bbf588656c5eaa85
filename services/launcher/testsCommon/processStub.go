package testsCommon

import "os"

// ProcessStub -
type ProcessStub struct {
	PidHandler    func() int
	SignalHandler func(sig os.Signal) error
	WaitHandler   func() int
}

// Pid -
func (stub *ProcessStub) Pid() int {
	if stub.PidHandler != nil {
		return stub.PidHandler()
	}

	return 0
}

// Signal -
func (stub *ProcessStub) Signal(sig os.Signal) error {
	if stub.SignalHandler != nil {
		return stub.SignalHandler(sig)
	}

	return nil
}

// Wait -
func (stub *ProcessStub) Wait() int {
	if stub.WaitHandler != nil {
		return stub.WaitHandler()
	}

	return 0
}

// IsInterfaceNil -
func (stub *ProcessStub) IsInterfaceNil() bool {
	return stub == nil
}
