//go:build linux

package process_linux

import (
	"errors"
	"os"
	"testing"
	"unsafe"

	"hexbot/pod"
	"hexbot/process"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

var target = [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}

func openSelf(t *testing.T) *LinuxProcess {
	t.Helper()

	p, err := NewWithPID(process.ProcessID(os.Getpid()))
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func skipIfDenied(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, unix.EPERM) || errors.Is(err, unix.ENOSYS) {
		t.Skipf("process_vm_readv/writev not permitted here: %v", err)
	}
}

func addrOf(p *uint32) process.ProcessMemoryAddress {
	return process.ProcessMemoryAddress(uintptr(unsafe.Pointer(p)))
}

func TestReadSelf(t *testing.T) {
	p := openSelf(t)

	v, err := pod.ReadT[uint32](p, addrOf(&target[2]))
	skipIfDenied(t, err)
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)

	all, err := pod.ReadSliceT[uint32](p, addrOf(&target[0]), len(target))
	require.NoError(t, err)
	require.Equal(t, target[:], all)
}

func TestWriteSelf(t *testing.T) {
	p := openSelf(t)

	err := pod.WriteT(p, addrOf(&target[7]), uint32(800))
	skipIfDenied(t, err)
	require.NoError(t, err)
	require.Equal(t, uint32(800), target[7])

	target[7] = 8
}

func TestUnmappedAddress(t *testing.T) {
	p := openSelf(t)

	_, err := p.ReadMemory(0x10, 4)
	require.ErrorIs(t, err, process.ErrAddressNotMapped)
}

func TestClose(t *testing.T) {
	p := openSelf(t)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.Equal(t, process.ProcessID(0), p.GetPID())

	_, err := p.ReadMemory(addrOf(&target[0]), 4)
	require.ErrorIs(t, err, process.ErrProcessNotOpen)
}

func TestOpenMissingProcess(t *testing.T) {
	_, err := NewWithPID(process.ProcessID(1 << 30))
	require.Error(t, err)
}
