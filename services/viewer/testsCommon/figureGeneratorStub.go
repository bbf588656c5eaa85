package testsCommon

import "github.com/iulianpascalau/xrd-launcher/services/viewer/common"

// FigureGeneratorStub -
type FigureGeneratorStub struct {
	GenerateTracesHandler func(settings common.FigureSettings, patterns []common.Pattern) []common.Trace
}

// GenerateTraces -
func (stub *FigureGeneratorStub) GenerateTraces(settings common.FigureSettings, patterns []common.Pattern) []common.Trace {
	if stub.GenerateTracesHandler != nil {
		return stub.GenerateTracesHandler(settings, patterns)
	}

	return make([]common.Trace, 0)
}

// IsInterfaceNil -
func (stub *FigureGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
