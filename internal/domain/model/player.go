package model

import (
	"strings"

	"github.com/okian/lineout/internal/domain/names"
)

// Player is one roster entry. Players are loaded fresh per request and never
// mutated afterwards.
type Player struct {
	FirstName string
	LastName  string
	// Role is the free-text type tag from the roster, e.g. "Forward" or "Pilar".
	Role string
	// Positions holds the shirt numbers listed for the player, if any.
	Positions []string
	// Contact carries every other roster column untouched.
	Contact map[string]string
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return names.Join(p.FirstName, p.LastName)
}

// Key is the case-insensitive join key for the player.
func (p Player) Key() string {
	return names.Key(p.FullName())
}

// Position renders the positions as they appear on the roster.
func (p Player) Position() string {
	return strings.Join(p.Positions, ", ")
}

// Roster header aliases, matched after capitalisation.
var (
	firstNameHeaders = []string{"Nombre", "Name", "First name", "Firstname"}
	lastNameHeaders  = []string{"Apellido", "Surname", "Last name", "Lastname"}
	roleHeaders      = []string{"Tipo", "Type", "Role", "Rol"}
	positionHeaders  = []string{"Puesto", "Position", "Posicion", "Posición"}
)

// ParseRoster converts the players table into roster entries. Rows without a
// name are skipped.
func ParseRoster(t Table) []Player {
	header := make([]string, len(t.Header))
	for i, h := range t.Header {
		header[i] = capitalize(h)
	}
	find := func(aliases []string) int {
		for i, h := range header {
			for _, a := range aliases {
				if h == a {
					return i
				}
			}
		}
		return -1
	}
	first, last := find(firstNameHeaders), find(lastNameHeaders)
	role, position := find(roleHeaders), find(positionHeaders)

	players := make([]Player, 0, len(t.Rows))
	for r := range t.Rows {
		p := Player{
			FirstName: strings.TrimSpace(t.Cell(r, first)),
			LastName:  strings.TrimSpace(t.Cell(r, last)),
			Role:      strings.TrimSpace(t.Cell(r, role)),
			Positions: splitPositions(t.Cell(r, position)),
			Contact:   map[string]string{},
		}
		if p.FullName() == "" {
			continue
		}
		for c, h := range header {
			if c == first || c == last || c == role || c == position || h == "" {
				continue
			}
			if v := strings.TrimSpace(t.Cell(r, c)); v != "" {
				p.Contact[h] = v
			}
		}
		players = append(players, p)
	}
	return players
}

func splitPositions(cell string) []string {
	if names.IsPlaceholder(cell) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(cell, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
