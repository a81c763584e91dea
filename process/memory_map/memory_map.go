package memory_map

import (
	"fmt"
	"sort"
)

// MemoryMapItem represents a memory region in a process's address space
type MemoryMapItem struct {
	Address uint64 // The starting address of the memory region
	Size    uint   // The size of the memory region in bytes
	Perms   string // Permissions (e.g., "rw-p" for read, write, private)
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", mmItem.Address, mmItem.Size, mmItem.Perms)
}

// End returns the first address past the region.
func (mmItem MemoryMapItem) End() uint64 {
	return mmItem.Address + uint64(mmItem.Size)
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return len(mmItem.Perms) > 0 && mmItem.Perms[0] == 'r'
}

func (mmItem MemoryMapItem) IsWritable() bool {
	return len(mmItem.Perms) > 1 && mmItem.Perms[1] == 'w'
}

// Sort orders the map by address; Find requires it.
func Sort(memoryMap []MemoryMapItem) {
	sort.Slice(memoryMap, func(i, j int) bool {
		return memoryMap[i].Address < memoryMap[j].Address
	})
}

// Find returns the region of a sorted memory map that contains addr, or nil.
func Find(addr uint64, memoryMap []MemoryMapItem) *MemoryMapItem {
	i := sort.Search(len(memoryMap), func(i int) bool {
		return memoryMap[i].End() > addr
	})
	if i < len(memoryMap) && memoryMap[i].Address <= addr {
		return &memoryMap[i]
	}

	return nil
}

// Covers returns the regions of a sorted memory map that together hold
// [addr, addr+size) without a gap, or nil if any byte is unmapped.
func Covers(addr uint64, size uint64, memoryMap []MemoryMapItem) []MemoryMapItem {
	first := sort.Search(len(memoryMap), func(i int) bool {
		return memoryMap[i].End() > addr
	})
	if first == len(memoryMap) || memoryMap[first].Address > addr {
		return nil
	}

	end := addr + size
	last := first
	for memoryMap[last].End() < end {
		next := last + 1
		if next == len(memoryMap) || memoryMap[next].Address != memoryMap[last].End() {
			return nil
		}
		last = next
	}
	return memoryMap[first : last+1]
}

// All reports whether every region satisfies ok.
func All(regions []MemoryMapItem, ok func(MemoryMapItem) bool) bool {
	for _, r := range regions {
		if !ok(r) {
			return false
		}
	}
	return len(regions) > 0
}
