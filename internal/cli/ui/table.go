// Package ui provides terminal output helpers for the recordkit CLI.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Table renders rows of cells in aligned columns with a colored header
type Table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// TableOptions configures table behavior
type TableOptions struct {
	NoColor bool
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	noColor := false
	if opts != nil {
		noColor = opts.NoColor
	}
	return &Table{writer: w, headers: headers, noColor: noColor}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	bold := color.New(color.Bold, color.FgCyan)
	if t.noColor {
		bold.DisableColor()
	}

	tw := tabwriter.NewWriter(t.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, bold.Sprint(strings.Join(t.headers, "\t")))

	underlines := make([]string, len(t.headers))
	for i, h := range t.headers {
		underlines[i] = strings.Repeat("─", len(h))
	}
	fmt.Fprintln(tw, strings.Join(underlines, "\t"))

	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush() //nolint:errcheck
}

// Header renders a styled section header with an underline
func Header(w io.Writer, title string, noColor bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", len(title)))
}
