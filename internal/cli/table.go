package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StyleFunc decorates an already padded cell. row is -1 for the header.
type StyleFunc func(row, col int, padded string) string

// Table represents a simple table formatter with dynamic column widths.
// Widths are measured in terminal cells, so wide and combining runes line up.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	style   StyleFunc
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// SetStyle installs a per-cell decorator. Styling is applied after padding
// so escape sequences never affect column widths.
func (t *Table) SetStyle(style StyleFunc) {
	t.style = style
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var result strings.Builder
	sep := strings.Repeat(" ", t.padding)

	t.writeLine(&result, -1, t.headers, colWidths, sep)

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, sep))
	result.WriteString("\n")

	for rowIdx, row := range t.rows {
		t.writeLine(&result, rowIdx, row, colWidths, sep)
	}

	return result.String()
}

func (t *Table) writeLine(b *strings.Builder, rowIdx int, cells []string, widths []int, sep string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = padRight(cell, widths[i])
		if t.style != nil {
			parts[i] = t.style(rowIdx, i, parts[i])
		}
	}
	// Trailing padding on the last column is noise.
	line := strings.Join(parts, sep)
	if t.style == nil {
		line = strings.TrimRight(line, " ")
	}
	b.WriteString(line)
	b.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired
// display width. Strings already at or beyond the width are returned unchanged.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
