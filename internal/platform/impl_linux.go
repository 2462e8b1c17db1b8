//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type linuxImpl struct{}

func newPlatform() (Platform, error) {
	return &linuxImpl{}, nil
}

// ListProcesses walks /proc reading each process's comm name. Processes that
// exit between the directory listing and the read are skipped.
func (p *linuxImpl) ListProcesses() ([]ProcessInfo, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("failed to read /proc: %w", err)
	}

	var processes []ProcessInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			// Process exited or access denied, not fatal
			continue
		}

		name := strings.TrimSpace(string(comm))
		if name == "" {
			continue
		}

		processes = append(processes, ProcessInfo{PID: pid, Name: name})
	}

	return processes, nil
}
