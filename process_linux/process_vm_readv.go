//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"hexbot/process"
	"hexbot/process/memory_map"

	"golang.org/x/sys/unix"
)

// process_vm_readv uses the process_vm_readv syscall to read len(localBuf)
// bytes from another process
func process_vm_readv(
	pid process.ProcessID,
	localBuf []byte,
	remoteAddr process.ProcessMemoryAddress,
) (int, error) {
	localIov := unix.Iovec{Base: &localBuf[0]}
	localIov.SetLen(len(localBuf))

	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(localBuf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)

	if errno != 0 {
		return 0, fmt.Errorf("process_vm_readv failed: %w", errno)
	}

	return int(n), nil
}

// ReadMemory reads size bytes at addr into a new buffer
func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	buf := make([]byte, size)
	if err := p.ReadMemoryInto(addr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadMemoryInto fills buf from addr. Anything less than len(buf) bytes is an error.
func (p *LinuxProcess) ReadMemoryInto(addr process.ProcessMemoryAddress, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	pid, regions, err := p.regions(addr, len(buf))
	if err != nil {
		return err
	}
	if !memory_map.All(regions, memory_map.MemoryMapItem.IsReadable) {
		return fmt.Errorf("memory region at %s is not readable", addr.ToString())
	}

	n, err := process_vm_readv(pid, buf, addr)
	if err != nil {
		return fmt.Errorf("read %s: %w", addr.ToString(), err)
	}

	if n != len(buf) {
		return fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortRead, n, len(buf), addr.ToString())
	}

	return nil
}
