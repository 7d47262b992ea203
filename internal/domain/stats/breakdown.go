package stats

import (
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/roles"
)

// Breakdown is the role split of the players present on one day.
type Breakdown struct {
	Date         time.Time
	Total        int
	Forwards     int
	Backs        int
	Unidentified int
	Present      []string // sorted
}

// DailyBreakdown splits the players present on day into forwards, backs and
// unidentified. Names are de-duplicated as written; a name that is not on
// the roster, or has no usable role, counts as unidentified.
func DailyBreakdown(events []model.Event, index roles.Index, day time.Time) Breakdown {
	day = dates.Day(day)
	present := mapset.NewThreadUnsafeSet[string]()
	for _, e := range events {
		if e.Date.Equal(day) {
			present.Add(e.Name)
		}
	}
	list := present.ToSlice()
	slices.Sort(list)

	b := Breakdown{Date: day, Total: len(list), Present: list}
	for _, name := range list {
		switch index.Lookup(name) {
		case roles.Forward:
			b.Forwards++
		case roles.Back:
			b.Backs++
		default:
			b.Unidentified++
		}
	}
	return b
}

// Identified reports whether every present player was classified.
func (b Breakdown) Identified() bool {
	return b.Unidentified == 0
}
