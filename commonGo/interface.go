package commonGo

import "time"

// FileLoggingHandler defines the operations of the rotating file logger
type FileLoggingHandler interface {
	ChangeFileLifeSpan(lifeSpan time.Duration, sizeInMB uint64) error
	Close() error
	IsInterfaceNil() bool
}
