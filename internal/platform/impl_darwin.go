//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

type darwinImpl struct{}

func newPlatform() (Platform, error) {
	return &darwinImpl{}, nil
}

// ListProcesses shells out to ps for the process table. The -c flag keeps
// the executable name without its path or arguments.
func (p *darwinImpl) ListProcesses() ([]ProcessInfo, error) {
	output, err := exec.Command("ps", "-axco", "pid=,comm=").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run ps: %w", err)
	}

	var processes []ProcessInfo
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		processes = append(processes, ProcessInfo{
			PID:  pid,
			Name: strings.Join(fields[1:], " "),
		})
	}

	return processes, nil
}
