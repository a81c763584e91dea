//go:build !linux && !windows

package locate

import (
	"fmt"
	"runtime"

	"hexbot/process"
)

// Open is not available on this platform.
func Open(pid process.ProcessID) (process.Memory, error) {
	return nil, fmt.Errorf("attaching to process %d is not supported on %s", pid, runtime.GOOS)
}
