package decide

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatFunc is a callback to format/colorize cell values
type FormatFunc func(value string) string

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header     string
	BlankValue string     // Value to show for empty cells (default: "-")
	FormatFunc FormatFunc // Optional formatter/colorizer
}

// Table is a plain text table with columns padded to their widest cell
type Table struct {
	columns []ColumnSpec
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column specifications
func NewTable(cols ...ColumnSpec) *Table {
	t := &Table{
		columns: cols,
		widths:  make([]int, len(cols)),
	}

	for i := range t.columns {
		t.widths[i] = visibleLength(t.columns[i].Header)
		if t.columns[i].BlankValue == "" {
			t.columns[i].BlankValue = "-"
		}
	}

	return t
}

// AddRow adds a row of data to the table; missing or empty cells get the
// column's BlankValue
func (t *Table) AddRow(data ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(data) && data[i] != "" {
			row[i] = data[i]
		} else {
			row[i] = t.columns[i].BlankValue
		}

		if t.columns[i].FormatFunc != nil {
			row[i] = t.columns[i].FormatFunc(row[i])
		}

		if n := visibleLength(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}

	t.rows = append(t.rows, row)
}

// Render writes the table to the given writer
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = pad(col.Header, t.widths[i])
		sep[i] = strings.Repeat("-", t.widths[i])
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headers, " "), " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, " ")); err != nil {
		return err
	}

	for _, row := range t.rows {
		formatted := make([]string, len(row))
		for i, val := range row {
			formatted[i] = pad(val, t.widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(formatted, " "), " ")); err != nil {
			return err
		}
	}

	return nil
}

func pad(s string, width int) string {
	visibleLen := visibleLength(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// visibleLength counts runes outside ANSI escape sequences
func visibleLength(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			length++
		}
	}
	return length
}

// WriteTable renders the per-slot aggregate of d, marking the chosen slot.
func (d Decision) WriteTable(w io.Writer, mark FormatFunc) error {
	table := NewTable(
		ColumnSpec{Header: "Slot"},
		ColumnSpec{Header: "MinDistance"},
		ColumnSpec{Header: "Target", BlankValue: " ", FormatFunc: mark},
	)

	for i, dist := range d.MinDistances {
		distance := strconv.FormatUint(uint64(dist), 10)
		if dist == NoObstacle {
			distance = "" // blank value
		}

		target := ""
		if uint32(i) == d.Slot {
			target = "*"
		}

		table.AddRow(strconv.Itoa(i), distance, target)
	}

	return table.Render(w)
}
