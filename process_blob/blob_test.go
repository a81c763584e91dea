package process_blob

import (
	"testing"

	"hexbot/process"
	"hexbot/process/memory_map"

	"github.com/stretchr/testify/require"
)

func TestProcessImageReadWrite(t *testing.T) {
	img := NewProcessImage(42)
	require.Equal(t, process.ProcessID(42), img.GetPID())

	require.NoError(t, img.Map(0x3000, []byte{9, 9, 9, 9}))
	require.NoError(t, img.Map(0x1000, []byte{1, 2, 3, 4, 5, 6, 7, 8}))

	blobs := img.Blobs()
	require.Len(t, blobs, 2)
	require.Equal(t, process.ProcessMemoryAddress(0x1000), blobs[0].Address())

	data, err := img.ReadMemory(0x1002, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4, 5, 6}, data)

	require.NoError(t, img.WriteMemory(0x1006, []byte{0xA, 0xB}))
	data, err = img.ReadMemory(0x1004, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{5, 6, 0xA, 0xB}, data)
}

func TestProcessImageMapCopies(t *testing.T) {
	img := NewProcessImage(1)
	src := []byte{1, 2}
	require.NoError(t, img.Map(0x10, src))
	src[0] = 0xFF

	data, err := img.ReadMemory(0x10, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, data)
}

func TestProcessImageOverlap(t *testing.T) {
	img := NewProcessImage(1)
	require.NoError(t, img.Map(0x1000, make([]byte, 16)))
	require.Error(t, img.Map(0x100F, make([]byte, 4)))
	require.Error(t, img.Map(0x0FF0, make([]byte, 32)))
	require.NoError(t, img.Map(0x1010, make([]byte, 4)))
}

func TestProcessImageErrors(t *testing.T) {
	img := NewProcessImage(1)
	require.NoError(t, img.Map(0x1000, make([]byte, 8)))

	_, err := img.ReadMemory(0x2000, 4)
	require.ErrorIs(t, err, process.ErrAddressNotMapped)

	_, err = img.ReadMemory(0x0FFF, 4)
	require.ErrorIs(t, err, process.ErrAddressNotMapped)

	_, err = img.ReadMemory(0x1006, 4)
	require.ErrorIs(t, err, process.ErrShortRead)

	err = img.WriteMemory(0x1006, []byte{1, 2, 3, 4})
	require.ErrorIs(t, err, process.ErrShortWrite)

	require.NoError(t, img.ReadMemoryInto(0x5000, nil))
	require.NoError(t, img.WriteMemory(0x5000, nil))

	img.SetReadOnly(true)
	err = img.WriteMemory(0x1000, []byte{1})
	require.ErrorIs(t, err, process.ErrReadOnly)
}

func TestProcessImageCloseOnce(t *testing.T) {
	img := NewProcessImage(1)
	require.NoError(t, img.Map(0x1000, make([]byte, 8)))

	require.False(t, img.Closed())
	require.NoError(t, img.Close())
	require.NoError(t, img.Close())
	require.True(t, img.Closed())
	require.Equal(t, 1, img.Closes())

	_, err := img.ReadMemory(0x1000, 4)
	require.ErrorIs(t, err, process.ErrProcessNotOpen)
}

func TestDumpRoundTrip(t *testing.T) {
	src := NewProcessImage(4242)
	require.NoError(t, src.Map(0x694B00, []byte{0x00, 0x10, 0x00, 0x00}))
	require.NoError(t, src.Map(0x1000, []byte("playfield bytes")))

	regions := []memory_map.MemoryMapItem{
		{Address: 0x1000, Size: 15, Perms: "rw-p"},
		{Address: 0x694B00, Size: 4, Perms: "rw-p"},
	}

	dir := t.TempDir()
	require.NoError(t, SaveDump(dir, src, "superhexagon.exe", regions))

	dump := NewProcessDump()
	require.NoError(t, dump.Load(dir))
	require.Equal(t, "superhexagon.exe", dump.Name)
	require.Equal(t, process.ProcessID(4242), dump.GetPID())
	require.Len(t, dump.MemoryMap, 2)
	require.Equal(t, uint64(0x1000), dump.MemoryMap[0].Address)

	data, err := dump.ReadMemory(0x1000, 15)
	require.NoError(t, err)
	require.Equal(t, []byte("playfield bytes"), data)

	data, err = dump.ReadMemory(0x694B00, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x10, 0x00, 0x00}, data)

	err = dump.WriteMemory(0x1000, []byte{1})
	require.ErrorIs(t, err, process.ErrReadOnly)
}

func TestSaveDumpAbortsOnUnreadableRegion(t *testing.T) {
	src := NewProcessImage(1)
	require.NoError(t, src.Map(0x1000, make([]byte, 8)))

	err := SaveDump(t.TempDir(), src, "x", []memory_map.MemoryMapItem{
		{Address: 0x1000, Size: 16, Perms: "rw-p"},
	})
	require.ErrorIs(t, err, process.ErrShortRead)
}

func TestLoadMissingDirectory(t *testing.T) {
	require.Error(t, NewProcessDump().Load(t.TempDir()))
}
