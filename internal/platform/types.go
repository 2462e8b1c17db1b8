package platform

// Platform defines the interface for platform-specific operations
type Platform interface {
	// ListProcesses returns a snapshot of the currently running processes.
	// Individual processes that exit or deny access mid-enumeration are
	// skipped, never reported as errors.
	ListProcesses() ([]ProcessInfo, error)
}

// ProcessInfo identifies one running process
type ProcessInfo struct {
	PID  int
	Name string
}
