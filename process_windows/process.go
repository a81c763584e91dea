//go:build windows

package process_windows

import (
	"fmt"
	"sync"

	"hexbot/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

// Access needed to read, write and operate on a foreign address space.
const processAccess = windows.PROCESS_VM_READ | windows.PROCESS_VM_WRITE | windows.PROCESS_VM_OPERATION

// WindowsProcess implements process.Memory on top of Read/WriteProcessMemory
type WindowsProcess struct {
	pid       process.ProcessID
	handle    windows.Handle
	log       *logger.Logger
	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

var _ process.Memory = (*WindowsProcess)(nil)

// NewWithPID creates a new WindowsProcess instance and opens it with the given PID
func NewWithPID(pid process.ProcessID) (*WindowsProcess, error) {
	handle, err := windows.OpenProcess(processAccess, false, uint32(pid))
	if err != nil {
		return nil, fmt.Errorf("OpenProcess(%d) failed: %w", pid, err)
	}

	p := &WindowsProcess{
		pid:    pid,
		handle: handle,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
	}

	p.log.Infoln("Process opened")
	return p, nil
}

// Close releases the process handle exactly once
func (p *WindowsProcess) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.handle != 0 {
			if err := windows.CloseHandle(p.handle); err != nil {
				p.closeErr = fmt.Errorf("CloseHandle failed: %w", err)
			}
			p.handle = 0
		}

		p.pid = 0
		p.log.Infoln("Process closed")
		p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
	})

	return p.closeErr
}

func (p *WindowsProcess) GetPID() process.ProcessID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pid
}

func (p *WindowsProcess) currentHandle() (windows.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return 0, process.ErrProcessNotOpen
	}
	return p.handle, nil
}

func (p *WindowsProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	buf := make([]byte, size)
	if err := p.ReadMemoryInto(addr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *WindowsProcess) ReadMemoryInto(addr process.ProcessMemoryAddress, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	handle, err := p.currentHandle()
	if err != nil {
		return err
	}

	var bytesRead uintptr
	err = windows.ReadProcessMemory(handle, uintptr(addr), &buf[0], uintptr(len(buf)), &bytesRead)
	if err != nil {
		return fmt.Errorf("ReadProcessMemory %s failed: %w", addr.ToString(), err)
	}

	if bytesRead != uintptr(len(buf)) {
		return fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortRead, bytesRead, len(buf), addr.ToString())
	}

	return nil
}

func (p *WindowsProcess) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	handle, err := p.currentHandle()
	if err != nil {
		return err
	}

	var written uintptr
	err = windows.WriteProcessMemory(handle, uintptr(addr), &data[0], uintptr(len(data)), &written)
	if err != nil {
		return fmt.Errorf("WriteProcessMemory %s failed: %w", addr.ToString(), err)
	}

	if written != uintptr(len(data)) {
		return fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortWrite, written, len(data), addr.ToString())
	}

	return nil
}
