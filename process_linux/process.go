//go:build linux

package process_linux

import (
	"fmt"
	"os"
	"sync"

	"hexbot/process"
	"hexbot/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// LinuxProcess implements process.Memory on top of process_vm_readv/writev
type LinuxProcess struct {
	pid       process.ProcessID
	log       *logger.Logger
	mm        []memory_map.MemoryMapItem
	mu        sync.Mutex
	closeOnce sync.Once
}

var _ process.Memory = (*LinuxProcess)(nil)

// NewWithPID creates a new LinuxProcess instance and opens it with the given PID
func NewWithPID(pid process.ProcessID) (*LinuxProcess, error) {
	p := &LinuxProcess{}
	if err := p.open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *LinuxProcess) open(pid process.ProcessID) error {
	// Check if process exists
	procPath := fmt.Sprintf("/proc/%d", pid)
	if _, err := os.Stat(procPath); os.IsNotExist(err) {
		return fmt.Errorf("process with PID %d does not exist", pid)
	}

	p.mu.Lock()
	p.pid = pid
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	p.mu.Unlock()

	if err := p.UpdateMemoryMap(); err != nil {
		return fmt.Errorf("failed to initialize memory map: %w", err)
	}

	p.log.Infoln("Process opened")

	return nil
}

// Close forgets the pid and memory map. There is no kernel handle to release
// on Linux, but the process is unusable afterwards.
func (p *LinuxProcess) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		p.pid = 0
		p.mm = nil

		p.log.Infoln("Process closed")
		p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
	})

	return nil
}

// GetPID returns the process ID
func (p *LinuxProcess) GetPID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

// UpdateMemoryMap rereads /proc/<pid>/maps
func (p *LinuxProcess) UpdateMemoryMap() error {
	p.mu.Lock()
	pid := p.pid
	p.mu.Unlock()

	if pid == 0 {
		return process.ErrProcessNotOpen
	}

	mm, err := memory_map.ReadMemoryMap(int(pid))
	if err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}

	p.mu.Lock()
	p.mm = mm
	p.mu.Unlock()
	return nil
}

// regions returns the adjacent mapped regions holding [addr, addr+size). The
// cached map is refreshed once on a miss since the target may have mapped new
// memory.
func (p *LinuxProcess) regions(addr process.ProcessMemoryAddress, size int) (process.ProcessID, []memory_map.MemoryMapItem, error) {
	p.mu.Lock()
	pid := p.pid
	items := memory_map.Covers(uint64(addr), uint64(size), p.mm)
	p.mu.Unlock()

	if pid == 0 {
		return 0, nil, process.ErrProcessNotOpen
	}
	if items != nil {
		return pid, items, nil
	}

	if err := p.UpdateMemoryMap(); err != nil {
		return 0, nil, err
	}

	p.mu.Lock()
	items = memory_map.Covers(uint64(addr), uint64(size), p.mm)
	p.mu.Unlock()

	if items == nil {
		return 0, nil, fmt.Errorf("%w: %s (+%d)", process.ErrAddressNotMapped, addr.ToString(), size)
	}
	return pid, items, nil
}
