//go:build windows

package locate

import (
	"hexbot/process"
	"hexbot/process_windows"
)

// Open attaches to pid with read and write access.
func Open(pid process.ProcessID) (process.Memory, error) {
	p, err := process_windows.NewWithPID(pid)
	if err != nil {
		return nil, err
	}
	return p, nil
}
