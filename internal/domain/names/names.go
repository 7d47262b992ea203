// Package names splits and normalises the free-text player name cells of
// attendance sheets.
package names

import "strings"

// Placeholders written into empty cells by spreadsheet exports.
var placeholders = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
}

// Extract returns the player names held by one cell.
//
// A form submission can mark several players at once ("Juan, Diego"), so the
// cell is split on commas. Parts are trimmed and blanks dropped; order is
// kept. Placeholder cells yield an empty list.
func Extract(cell string) []string {
	if IsPlaceholder(cell) {
		return []string{}
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// IsPlaceholder reports whether a cell is empty or an export placeholder.
func IsPlaceholder(cell string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

// Key is the lookup key used to join names across tables.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Join builds a full name from first and last name cells.
func Join(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if last == "" {
		return first
	}
	if first == "" {
		return last
	}
	return first + " " + last
}
