// Package hexdump renders raw memory as text, one record per line.
package hexdump

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// HexDumpOptions defines options for customizing the hexdump output
type HexDumpOptions struct {
	// BytesPerLine defines the number of bytes to display per line
	BytesPerLine int

	// Groups splits each line into byte groups of these widths, e.g. the
	// field widths of a record. Empty means groups of GroupSize.
	Groups []int

	// GroupSize is used when Groups is empty
	GroupSize int

	// ShowASCII determines whether to show the ASCII representation
	ShowASCII bool

	// StartOffset is added to the offset column
	StartOffset uint64

	// OffsetWidth is the width of the offset column in hex digits
	OffsetWidth int

	// MaxLines is the maximum number of lines to show (0 for no limit)
	MaxLines int
}

// DefaultOptions returns the default hexdump options
func DefaultOptions() HexDumpOptions {
	return HexDumpOptions{
		BytesPerLine: 16,
		GroupSize:    1,
		ShowASCII:    true,
		OffsetWidth:  8,
	}
}

// RecordOptions lays out one record per line with its fields grouped.
func RecordOptions(start uint64, fieldWidths ...int) HexDumpOptions {
	size := 0
	for _, w := range fieldWidths {
		size += w
	}

	opts := DefaultOptions()
	opts.BytesPerLine = size
	opts.Groups = fieldWidths
	opts.StartOffset = start
	opts.ShowASCII = false
	return opts
}

// Dump creates a hex dump of the given data with specified options
func Dump(data []byte, options HexDumpOptions) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, data, options)
	return buffer.String()
}

// DumpToWriter writes a hex dump of the given data to the specified writer
func DumpToWriter(writer io.Writer, data []byte, options HexDumpOptions) {
	if options.BytesPerLine <= 0 {
		options.BytesPerLine = 16
	}
	if options.GroupSize <= 0 {
		options.GroupSize = 1
	}
	if options.OffsetWidth <= 0 {
		options.OffsetWidth = 8
	}

	lineCount := 0
	for offset := 0; offset < len(data); offset += options.BytesPerLine {
		if options.MaxLines > 0 && lineCount >= options.MaxLines {
			fmt.Fprintf(writer, "... %d more bytes\n", len(data)-offset)
			break
		}

		end := min(offset+options.BytesPerLine, len(data))
		formatLine(writer, data[offset:end], uint64(offset)+options.StartOffset, options)
		lineCount++
	}
}

// formatLine formats a single line of the hex dump
func formatLine(writer io.Writer, data []byte, offset uint64, options HexDumpOptions) {
	fmt.Fprintf(writer, "%0*x  ", options.OffsetWidth, offset)

	hex := strings.Join(formatHexValues(data, options), " ")
	fmt.Fprint(writer, hex)

	if options.ShowASCII {
		// Keep the ASCII column aligned on short lines.
		full := len(strings.Join(formatHexValues(make([]byte, options.BytesPerLine), options), " "))
		if pad := full - len(hex); pad > 0 {
			fmt.Fprint(writer, strings.Repeat(" ", pad))
		}

		fmt.Fprint(writer, " | ")
		for _, b := range data {
			if c := rune(b); b != 0 && b < unicode.MaxASCII && unicode.IsPrint(c) {
				fmt.Fprint(writer, string(c))
			} else {
				fmt.Fprint(writer, ".")
			}
		}
	}

	fmt.Fprintln(writer)
}

// formatHexValues splits data into groups of hex digits
func formatHexValues(data []byte, options HexDumpOptions) []string {
	widths := options.Groups
	if len(widths) == 0 {
		widths = []int{options.GroupSize}
	}

	var result []string
	for i, g := 0, 0; i < len(data); g++ {
		w := widths[g%len(widths)]
		if w <= 0 {
			w = 1
		}
		end := min(i+w, len(data))
		result = append(result, fmt.Sprintf("%x", data[i:end]))
		i = end
	}

	return result
}
