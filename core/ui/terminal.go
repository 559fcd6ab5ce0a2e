// Package ui - Terminal output
// Plain-text tables with optional ANSI color for margin traffic-lighting.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted output
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.Color(Yellow, "⚠ ") + msg)
}

// Table renders a column-aligned table. Cells may carry a color that is
// applied at render time so alignment is computed on the bare text.
type Table struct {
	w       *Writer
	headers []string
	rows    [][]cell
	widths  []int
}

type cell struct {
	text  string
	color string
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row of plain cells
func (t *Table) AddRow(cells ...string) {
	row := make([]cell, len(cells))
	for i, c := range cells {
		row[i] = cell{text: c}
	}
	t.addRow(row)
}

// AddColoredRow adds a row where the named column is colorized
func (t *Table) AddColoredRow(column int, color string, cells ...string) {
	row := make([]cell, len(cells))
	for i, c := range cells {
		row[i] = cell{text: c}
		if i == column {
			row[i].color = color
		}
	}
	t.addRow(row)
}

func (t *Table) addRow(row []cell) {
	padded := make([]cell, len(t.headers))
	for i := range padded {
		if i < len(row) {
			padded[i] = row[i]
		}
		if len(padded[i].text) > t.widths[i] {
			t.widths[i] = len(padded[i].text)
		}
	}
	t.rows = append(t.rows, padded)
}

// Render prints the table
func (t *Table) Render() {
	var header strings.Builder
	for i, h := range t.headers {
		if i > 0 {
			header.WriteString(" │ ")
		}
		header.WriteString(pad(h, t.widths[i]))
	}
	t.w.Println("%s", t.w.Color(Bold, header.String()))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for _, row := range t.rows {
		var line strings.Builder
		for i, c := range row {
			if i > 0 {
				line.WriteString(" │ ")
			}
			text := pad(c.text, t.widths[i])
			if c.color != "" {
				text = t.w.Color(c.color, text)
			}
			line.WriteString(text)
		}
		t.w.Println("%s", line.String())
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
