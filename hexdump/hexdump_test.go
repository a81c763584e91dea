package hexdump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpDefault(t *testing.T) {
	out := Dump([]byte("Hexagon\x00\x01"), DefaultOptions())
	require.Equal(t,
		"00000000  48 65 78 61 67 6f 6e 00 01                      | Hexagon..\n",
		out)
}

func TestDumpRecords(t *testing.T) {
	rec := []byte{
		0x03, 0x00, 0x00, 0x00,
		0xfa, 0x00, 0x00, 0x00,
		0x01,
		0x00, 0x00, 0x00,
		0xaa, 0xaa, 0x00, 0x00,
		0xbb, 0xbb, 0x00, 0x00,
	}
	data := append(append([]byte{}, rec...), rec...)

	out := Dump(data, RecordOptions(0x1000220, 4, 4, 1, 3, 4, 4))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "01000220  03000000 fa000000 01 000000 aaaa0000 bbbb0000", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "01000234  "))
}

func TestDumpMaxLines(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLines = 1

	out := Dump(make([]byte, 40), opts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "... 24 more bytes", lines[1])
}
