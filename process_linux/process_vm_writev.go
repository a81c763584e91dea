//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"hexbot/process"
	"hexbot/process/memory_map"

	"golang.org/x/sys/unix"
)

// process_vm_writev uses the process_vm_writev syscall to write memory to another process
func process_vm_writev(
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
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)

	if errno != 0 {
		return 0, fmt.Errorf("process_vm_writev failed: %w", errno)
	}

	return int(n), nil
}

// WriteMemory writes data to the process memory at the specified address
func (p *LinuxProcess) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	pid, regions, err := p.regions(addr, len(data))
	if err != nil {
		return err
	}

	if !memory_map.All(regions, memory_map.MemoryMapItem.IsWritable) {
		return fmt.Errorf("memory region at %s is not writable", addr.ToString())
	}

	// The syscall reads from our buffer; keep callers from racing it.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	written, err := process_vm_writev(pid, dataCopy, addr)
	if err != nil {
		return fmt.Errorf("write %s: %w", addr.ToString(), err)
	}

	if written != len(data) {
		return fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortWrite, written, len(data), addr.ToString())
	}

	return nil
}
