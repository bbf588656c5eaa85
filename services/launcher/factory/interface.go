package factory

// Engine defines the launcher's operations
type Engine interface {
	Launch() int
	IsInterfaceNil() bool
}
