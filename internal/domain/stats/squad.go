package stats

import (
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/okian/lineout/internal/domain/injury"
	"github.com/okian/lineout/internal/domain/model"
)

// Squad summarises roster availability.
type Squad struct {
	Roster       int
	Injured      int
	Available    int
	AvailablePct float64
}

// SquadSummary counts active injuries against the roster size.
func SquadSummary(players []model.Player, injuries []model.Injury) Squad {
	injured := len(injury.Active(injuries))
	available := max(len(players)-injured, 0)
	return Squad{
		Roster:       len(players),
		Injured:      injured,
		Available:    available,
		AvailablePct: percent(available, len(players)),
	}
}

// PlayerAttendance is one row of the roster attendance view.
type PlayerAttendance struct {
	Player     model.Player
	Attended   int
	Sessions   int
	Percentage float64
	Status     Status
	Sidelined  bool
}

// RosterAttendance computes the overall attendance of every roster player,
// sorted by full name. Attendance counts the days on which the exact full
// name appears, as in PeriodPercentages; players who never attended score 0.
func RosterAttendance(players []model.Player, events []model.Event, injuries []model.Injury) []PlayerAttendance {
	idx := BuildAttendanceIndex(events)
	sessions := SessionCount(events)

	out := make([]PlayerAttendance, 0, len(players))
	for _, p := range players {
		attended := 0
		if set, ok := idx[p.FullName()]; ok {
			attended = set.Cardinality()
		}
		pct := percent(attended, sessions)
		out = append(out, PlayerAttendance{
			Player:     p,
			Attended:   attended,
			Sessions:   sessions,
			Percentage: pct,
			Status:     StatusOf(pct),
			Sidelined:  injury.IsSidelined(injuries, p.FullName()),
		})
	}
	slices.SortStableFunc(out, func(a, b PlayerAttendance) int {
		return strings.Compare(a.Player.FullName(), b.Player.FullName())
	})
	return out
}

// DayCount is the number of distinct players present on a day.
type DayCount struct {
	Date    time.Time
	Players int
}

// DailySeries returns one count per session day, oldest first.
func DailySeries(events []model.Event) []DayCount {
	byDay := make(map[time.Time]mapset.Set[string])
	for _, e := range events {
		set, ok := byDay[e.Date]
		if !ok {
			set = mapset.NewThreadUnsafeSet[string]()
			byDay[e.Date] = set
		}
		set.Add(e.Name)
	}
	out := make([]DayCount, 0, len(byDay))
	for d, set := range byDay {
		out = append(out, DayCount{Date: d, Players: set.Cardinality()})
	}
	slices.SortFunc(out, func(a, b DayCount) int { return a.Date.Compare(b.Date) })
	return out
}

// Unidentified returns the distinct attendance names that match no roster
// player, sorted.
func Unidentified(players []model.Player, events []model.Event) []string {
	known := mapset.NewThreadUnsafeSet[string]()
	for _, p := range players {
		known.Add(p.Key())
	}
	unknown := mapset.NewThreadUnsafeSet[string]()
	for _, e := range events {
		if !known.Contains(strings.ToLower(strings.TrimSpace(e.Name))) {
			unknown.Add(e.Name)
		}
	}
	out := unknown.ToSlice()
	slices.Sort(out)
	return out
}
