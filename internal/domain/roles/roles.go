// Package roles maps free-text roster role tags to the two rugby position
// groups used in daily breakdowns.
package roles

import (
	"strings"

	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/names"
)

// Role is the coarse position group of a player.
type Role int

const (
	Unknown Role = iota
	Forward
	Back
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Forward:
		return "forward"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Keyword tables. Matching is by substring over the lower-cased tag, so
// "Segunda línea" and "3/4 centro" both resolve. "foward" is a misspelling
// that exists in the roster.
var (
	ForwardKeywords = []string{"forward", "foward", "fwd", "pilar", "hooker", "segunda", "ala", "octavo"}
	BackKeywords    = []string{"back", "3/4", "medio", "apertura", "centro", "wing", "fullback"}
)

// Rule assigns a role to tags containing any of its keywords.
type Rule struct {
	Role     Role
	Keywords []string
}

// Classifier evaluates rules in order; the first matching rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier from rules evaluated in the given order.
func NewClassifier(rules ...Rule) Classifier {
	return Classifier{rules: rules}
}

// Default checks forwards before backs, so "Forward/Back utility" is a forward.
var Default = NewClassifier(
	Rule{Role: Forward, Keywords: ForwardKeywords},
	Rule{Role: Back, Keywords: BackKeywords},
)

// Classify maps a role tag to a Role.
func (c Classifier) Classify(tag string) Role {
	tag = strings.ToLower(tag)
	if strings.TrimSpace(tag) == "" {
		return Unknown
	}
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(tag, kw) {
				return rule.Role
			}
		}
	}
	return Unknown
}

// Classify maps a role tag with the default classifier.
func Classify(tag string) Role {
	return Default.Classify(tag)
}

// Index maps lower-cased full names to lower-cased role tags.
type Index map[string]string

// BuildIndex derives the role index from a roster. It is rebuilt per request.
func BuildIndex(players []model.Player) Index {
	idx := make(Index, len(players))
	for _, p := range players {
		idx[p.Key()] = strings.ToLower(strings.TrimSpace(p.Role))
	}
	return idx
}

// Lookup classifies a name present in attendance. Names missing from the
// roster, or listed without a role, are Unknown.
func (idx Index) Lookup(name string) Role {
	tag, ok := idx[names.Key(name)]
	if !ok {
		return Unknown
	}
	return Classify(tag)
}

// Known reports whether a name is on the roster.
func (idx Index) Known(name string) bool {
	_, ok := idx[names.Key(name)]
	return ok
}
