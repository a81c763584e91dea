package process

//go:generate go tool mockgen -destination=./mocks/memory_mock.go -package=mocks . Memory

// Memory is the single boundary through which raw bytes cross into and out of
// a foreign process. Implementations own the underlying handle.
type Memory interface {
	// GetPID returns the process ID
	GetPID() ProcessID

	// ReadMemory reads exactly size bytes at addr into a new buffer
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// ReadMemoryInto reads exactly len(buf) bytes at addr into buf
	ReadMemoryInto(addr ProcessMemoryAddress, buf []byte) error

	// WriteMemory writes all of data at addr
	WriteMemory(addr ProcessMemoryAddress, data []byte) error

	// Close releases the handle. Calling Close more than once is a no-op.
	Close() error
}
