// Package model contains domain models passed between layers.
package model

import "strings"

// Table is a raw snapshot of one spreadsheet tab: a header row plus data rows.
// Cells are kept as text; interpretation happens in the domain packages.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Cell returns the text at (row, col), or "" when out of range.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Column returns the index of the first header accepted by match, or -1.
func (t Table) Column(match func(header string) bool) int {
	for i, h := range t.Header {
		if match(h) {
			return i
		}
	}
	return -1
}

// capitalize mirrors spreadsheet header clean-up: trimmed, first letter upper,
// rest lower ("  nombre " -> "Nombre").
func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
