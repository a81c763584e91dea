package process

import (
	"fmt"
)

// ProcessMemoryAddress represents a memory address within a process
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) ToString() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

// Add returns the address offset bytes past pma.
func (pma ProcessMemoryAddress) Add(offset ProcessMemorySize) ProcessMemoryAddress {
	return pma + ProcessMemoryAddress(offset)
}

// ProcessMemorySize represents a size of memory region
type ProcessMemorySize uint

func (pms ProcessMemorySize) ToString() string {
	return fmt.Sprintf("%d bytes", uint(pms))
}
