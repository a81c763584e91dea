package process_blob

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"hexbot/process"
)

// ProcessBlob is a contiguous run of bytes that lives at baseaddress in a
// foreign address space.
type ProcessBlob struct {
	baseaddress process.ProcessMemoryAddress
	data        []byte
}

func NewProcessBlob(baseAddress process.ProcessMemoryAddress, data []byte) *ProcessBlob {
	return &ProcessBlob{
		baseaddress: baseAddress,
		data:        data,
	}
}

func (p *ProcessBlob) Address() process.ProcessMemoryAddress {
	return p.baseaddress
}

func (p *ProcessBlob) Data() []byte {
	return p.data
}

// window returns the slice backing [addr, addr+size), or nil if any of it
// falls outside the blob.
func (p *ProcessBlob) window(addr process.ProcessMemoryAddress, size int) []byte {
	if addr < p.baseaddress {
		return nil
	}
	offset := uint64(addr - p.baseaddress)
	if offset+uint64(size) > uint64(len(p.data)) {
		return nil
	}
	return p.data[offset : offset+uint64(size)]
}

// ProcessImage is a process.Memory backed by blobs held in this process. It
// stands in for a live target in tests and serves saved dumps.
type ProcessImage struct {
	pid      process.ProcessID
	readOnly bool

	mu        sync.Mutex
	blobs     []*ProcessBlob
	closed    bool
	closeOnce sync.Once
	closes    int
}

var _ process.Memory = (*ProcessImage)(nil)

// NewProcessImage creates an empty, writable image reporting pid.
func NewProcessImage(pid process.ProcessID) *ProcessImage {
	return &ProcessImage{pid: pid}
}

// Map places a copy of data at addr. Regions must not overlap.
func (p *ProcessImage) Map(addr process.ProcessMemoryAddress, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	end := uint64(addr) + uint64(len(data))
	for _, b := range p.blobs {
		bEnd := uint64(b.baseaddress) + uint64(len(b.data))
		if uint64(addr) < bEnd && uint64(b.baseaddress) < end {
			return fmt.Errorf("region %s (+%d) overlaps %s", addr.ToString(), len(data), b.baseaddress.ToString())
		}
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	p.blobs = append(p.blobs, NewProcessBlob(addr, buf))
	sort.Slice(p.blobs, func(i, j int) bool {
		return p.blobs[i].baseaddress < p.blobs[j].baseaddress
	})
	return nil
}

// SetReadOnly makes every later WriteMemory fail with process.ErrReadOnly.
func (p *ProcessImage) SetReadOnly(readOnly bool) {
	p.mu.Lock()
	p.readOnly = readOnly
	p.mu.Unlock()
}

// Blobs returns the mapped regions in address order.
func (p *ProcessImage) Blobs() []*ProcessBlob {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*ProcessBlob, len(p.blobs))
	copy(out, p.blobs)
	return out
}

func (p *ProcessImage) GetPID() process.ProcessID {
	return p.pid
}

// Closed reports whether Close has been called.
func (p *ProcessImage) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Closes reports how many times the image was actually released.
func (p *ProcessImage) Closes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closes
}

func (p *ProcessImage) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.closes++
		p.mu.Unlock()
	})
	return nil
}

// find must be called with p.mu held.
func (p *ProcessImage) find(addr process.ProcessMemoryAddress, size int) ([]byte, error) {
	if p.closed {
		return nil, process.ErrProcessNotOpen
	}

	i := sort.Search(len(p.blobs), func(i int) bool {
		return uint64(p.blobs[i].baseaddress)+uint64(len(p.blobs[i].data)) > uint64(addr)
	})
	if i == len(p.blobs) || p.blobs[i].baseaddress > addr {
		return nil, fmt.Errorf("%w: %s", process.ErrAddressNotMapped, addr.ToString())
	}

	window := p.blobs[i].window(addr, size)
	if window == nil {
		available := uint64(p.blobs[i].baseaddress) + uint64(len(p.blobs[i].data)) - uint64(addr)
		return nil, fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortRead, available, size, addr.ToString())
	}
	return window, nil
}

func (p *ProcessImage) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	buf := make([]byte, size)
	if err := p.ReadMemoryInto(addr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *ProcessImage) ReadMemoryInto(addr process.ProcessMemoryAddress, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	window, err := p.find(addr, len(buf))
	if err != nil {
		return err
	}
	copy(buf, window)
	return nil
}

func (p *ProcessImage) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.readOnly {
		return fmt.Errorf("%w: write %s", process.ErrReadOnly, addr.ToString())
	}

	window, err := p.find(addr, len(data))
	if err != nil {
		if errors.Is(err, process.ErrShortRead) {
			return fmt.Errorf("%w: %d bytes at %s", process.ErrShortWrite, len(data), addr.ToString())
		}
		return err
	}
	copy(window, data)
	return nil
}
