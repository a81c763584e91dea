//go:build linux

package locate

import (
	"hexbot/process"
	"hexbot/process_linux"
)

// Open attaches to pid with read and write access.
func Open(pid process.ProcessID) (process.Memory, error) {
	p, err := process_linux.NewWithPID(pid)
	if err != nil {
		return nil, err
	}
	return p, nil
}
