package termcolor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Color represents an ANSI color/style code.
type Color string

const (
	Bold   Color = "\033[1m"
	Red    Color = "\033[31m"
	Green  Color = "\033[32m"
	Yellow Color = "\033[33m"
	Cyan   Color = "\033[36m"
	Gray   Color = "\033[90m"
	Reset  Color = "\033[0m"
)

// Painter applies ANSI colors to strings, respecting NO_COLOR and --no-color.
type Painter struct {
	disabled bool
}

// NewPainter creates a Painter. Colors are disabled if forceDisable is true
// or the NO_COLOR environment variable is set.
func NewPainter(forceDisable bool) *Painter {
	disabled := forceDisable
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		disabled = true
	}
	return &Painter{disabled: disabled}
}

// Enabled reports whether Paint emits escape codes.
func (p *Painter) Enabled() bool { return !p.disabled }

// Paint wraps s with the given colors. Returns s unmodified when colors are
// disabled or none are given.
func (p *Painter) Paint(s string, colors ...Color) string {
	if p.disabled || len(colors) == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(string(c))
	}
	b.WriteString(s)
	b.WriteString(string(Reset))
	return b.String()
}

// VisibleLen returns the display width of s, excluding ANSI escape sequences.
func VisibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		if r == '\033' {
			inEsc = true
			continue
		}
		n++
	}
	return n
}

// Table pads columns by visible width so colored cells stay aligned.
type Table struct {
	header []string
	rows   [][]string
	gap    int
}

// NewTable creates a Table with the given inter-column gap in spaces.
func NewTable(gap int) *Table {
	return &Table{gap: gap}
}

// SetHeader sets a header row rendered before all other rows.
func (t *Table) SetHeader(cells ...string) {
	t.header = cells
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of body rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w. Nothing is written for a table without rows.
func (t *Table) Render(w io.Writer) {
	if len(t.rows) == 0 {
		return
	}
	all := t.rows
	if len(t.header) > 0 {
		all = append([][]string{t.header}, t.rows...)
	}

	widths := columnWidths(all)
	pad := strings.Repeat(" ", t.gap)
	for _, row := range all {
		writeRow(w, row, widths, pad)
	}
}

func columnWidths(rows [][]string) []int {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], VisibleLen(cell))
		}
	}
	return widths
}

// writeRow pads every column but the last.
func writeRow(w io.Writer, row []string, widths []int, pad string) {
	for i, cell := range row {
		if i > 0 {
			fmt.Fprint(w, pad)
		}
		fmt.Fprint(w, cell)
		if i < len(row)-1 {
			fmt.Fprint(w, strings.Repeat(" ", widths[i]-VisibleLen(cell)))
		}
	}
	fmt.Fprintln(w)
}
