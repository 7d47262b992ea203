package attendance

import (
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/okian/lineout/internal/domain/model"
)

// SessionDates returns the distinct training days, newest first. A day is a
// session when at least one attendance event exists for it.
func SessionDates(events []model.Event) []time.Time {
	set := mapset.NewThreadUnsafeSetWithSize[time.Time](len(events))
	for _, e := range events {
		set.Add(e.Date)
	}
	days := set.ToSlice()
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	return days
}

// OnDay returns the events recorded for one calendar day.
func OnDay(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, e := range events {
		if e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	return out
}
