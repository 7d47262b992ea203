package stats

import (
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/roles"
)

// Periods holds a player's attendance percentage per window.
type Periods struct {
	Year  float64
	Month float64
	Week  float64
}

// window tracks sessions and a player's attended days from start onwards.
type window struct {
	start    time.Time
	sessions mapset.Set[time.Time]
	attended mapset.Set[time.Time]
}

func newWindow(start time.Time) *window {
	return &window{
		start:    start,
		sessions: mapset.NewThreadUnsafeSet[time.Time](),
		attended: mapset.NewThreadUnsafeSet[time.Time](),
	}
}

func (w *window) add(e model.Event, mine bool) {
	if e.Date.Before(w.start) {
		return
	}
	w.sessions.Add(e.Date)
	if mine {
		w.attended.Add(e.Date)
	}
}

func (w *window) percent() float64 {
	return percent(w.attended.Cardinality(), w.sessions.Cardinality())
}

// PeriodPercentages computes a player's attendance for the year, month and
// week windows ending now.
//
// A session is any day with at least one event, so the denominator of a
// window is its number of distinct event days; the numerator counts the
// distinct days on which name appears. The year window spans all data. The
// name is trimmed and then compared exactly. Players who never attended get
// zeros.
func PeriodPercentages(events []model.Event, name string, now time.Time) Periods {
	name = strings.TrimSpace(name)
	year := newWindow(time.Time{})
	month := newWindow(dates.MonthStart(now))
	week := newWindow(dates.WeekStart(now))
	for _, e := range events {
		mine := name != "" && e.Name == name
		year.add(e, mine)
		month.add(e, mine)
		week.add(e, mine)
	}
	return Periods{
		Year:  year.percent(),
		Month: month.percent(),
		Week:  week.percent(),
	}
}

// PlayerPeriods is PeriodPercentages restricted to the roster: a name the
// index does not know scores zero in every window.
func PlayerPeriods(events []model.Event, index roles.Index, name string, now time.Time) Periods {
	if !index.Known(name) {
		return Periods{}
	}
	return PeriodPercentages(events, name, now)
}

// BuildAttendanceIndex maps each trimmed name, as written, to the set of days
// it was present. Keys match names the same way PeriodPercentages does.
func BuildAttendanceIndex(events []model.Event) map[string]mapset.Set[time.Time] {
	idx := make(map[string]mapset.Set[time.Time])
	for _, e := range events {
		key := strings.TrimSpace(e.Name)
		set, ok := idx[key]
		if !ok {
			set = mapset.NewThreadUnsafeSet[time.Time]()
			idx[key] = set
		}
		set.Add(e.Date)
	}
	return idx
}

// SessionCount returns the number of distinct days with events.
func SessionCount(events []model.Event) int {
	set := mapset.NewThreadUnsafeSet[time.Time]()
	for _, e := range events {
		set.Add(e.Date)
	}
	return set.Cardinality()
}
