package common

// LaunchSpec holds everything needed to start the entry point as a background process
type LaunchSpec struct {
	Directory string
	Env       []string
	Command   string
	Args      []string
}
