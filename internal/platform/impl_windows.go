//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsImpl struct{}

func newPlatform() (Platform, error) {
	return &windowsImpl{}, nil
}

// ListProcesses takes a Toolhelp32 snapshot of the process table
func (p *windowsImpl) ListProcesses() ([]ProcessInfo, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create process snapshot: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snapshot, &entry); err != nil {
		return nil, fmt.Errorf("failed to read process snapshot: %w", err)
	}

	var processes []ProcessInfo
	for {
		name := windows.UTF16ToString(entry.ExeFile[:])
		if name != "" {
			processes = append(processes, ProcessInfo{
				PID:  int(entry.ProcessID),
				Name: name,
			})
		}

		if err := windows.Process32Next(snapshot, &entry); err != nil {
			// ERROR_NO_MORE_FILES ends the walk; anything else for a single
			// entry is not worth aborting the snapshot over
			break
		}
	}

	return processes, nil
}
