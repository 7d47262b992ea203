package model

import (
	"strings"
	"unicode"
)

// Injury is one row of the injuries table.
type Injury struct {
	Player          string
	Severity        string
	Diagnosis       string
	EstimatedReturn string
}

// The medical staff colour-code severity. Spanish labels, masculine or
// feminine, are matched as substrings ("Rojo - fuera", "tarjeta roja");
// English ones as whole words so that "recovered" does not read as "red".
var (
	activeFragments = []string{"rojo", "roja", "amarillo", "amarilla"}
	activeWords     = map[string]struct{}{"red": {}, "yellow": {}}
)

// Active reports whether the injury still sidelines the player.
func (i Injury) Active() bool {
	s := strings.ToLower(i.Severity)
	for _, f := range activeFragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	words := strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, w := range words {
		if _, ok := activeWords[w]; ok {
			return true
		}
	}
	return false
}

// Injury header fragments, matched against lower-cased headers.
var (
	severityHeaders  = []string{"gravedad", "estado", "severity", "status"}
	injuryPlayerKeys = []string{"jugador", "nombre", "player", "name"}
	diagnosisHeaders = []string{"diagn"}
	returnHeaders    = []string{"regreso", "return", "alta"}
)

// ParseInjuries converts the injuries table into records. Columns are found
// by header fragments because the medical sheet has no fixed layout.
func ParseInjuries(t Table) []Injury {
	contains := func(fragments []string) func(string) bool {
		return func(h string) bool {
			h = strings.ToLower(strings.TrimSpace(h))
			for _, f := range fragments {
				if strings.Contains(h, f) {
					return true
				}
			}
			return false
		}
	}
	severity := t.Column(contains(severityHeaders))
	player := t.Column(contains(injuryPlayerKeys))
	diagnosis := t.Column(contains(diagnosisHeaders))
	ret := t.Column(contains(returnHeaders))

	out := make([]Injury, 0, len(t.Rows))
	for r := range t.Rows {
		out = append(out, Injury{
			Player:          strings.TrimSpace(t.Cell(r, player)),
			Severity:        strings.TrimSpace(t.Cell(r, severity)),
			Diagnosis:       strings.TrimSpace(t.Cell(r, diagnosis)),
			EstimatedReturn: strings.TrimSpace(t.Cell(r, ret)),
		})
	}
	return out
}
