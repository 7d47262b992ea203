// Package injury answers roster questions against the injuries table.
package injury

import (
	"strings"

	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/names"
)

// Active returns the records that still sideline a player.
func Active(records []model.Injury) []model.Injury {
	var out []model.Injury
	for _, r := range records {
		if r.Active() {
			out = append(out, r)
		}
	}
	return out
}

// History returns the records for a player.
//
// Exact (case-insensitive) matches are preferred. When there are none the
// lookup falls back to substring containment, which the medical sheet relies
// on for entries typed with only a first name. The fallback can attribute
// "Juliana"'s records to "Ana"; use HistoryStrict where that matters.
func History(records []model.Injury, player string) []model.Injury {
	if exact := HistoryStrict(records, player); len(exact) > 0 {
		return exact
	}
	key := names.Key(player)
	if key == "" {
		return nil
	}
	var out []model.Injury
	for _, r := range records {
		rec := names.Key(r.Player)
		if rec == "" {
			continue
		}
		if strings.Contains(rec, key) || strings.Contains(key, rec) {
			out = append(out, r)
		}
	}
	return out
}

// HistoryStrict returns the records whose player equals the name, ignoring
// case and padding.
func HistoryStrict(records []model.Injury, player string) []model.Injury {
	key := names.Key(player)
	if key == "" {
		return nil
	}
	var out []model.Injury
	for _, r := range records {
		if names.Key(r.Player) == key {
			out = append(out, r)
		}
	}
	return out
}

// IsSidelined reports whether any strictly matched record is active.
func IsSidelined(records []model.Injury, player string) bool {
	for _, r := range HistoryStrict(records, player) {
		if r.Active() {
			return true
		}
	}
	return false
}
