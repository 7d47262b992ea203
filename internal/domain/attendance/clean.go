package attendance

import (
	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/names"
)

// Report counts what cleaning did to the unified rows.
type Report struct {
	Rows        int // unified rows read
	Events      int // events produced
	Exploded    int // extra events created by multi-name cells
	NoName      int // rows without any name
	InvalidDate int // rows (after explode) dropped for an unparseable date
}

// Clean turns unified rows into one event per (valid date, single name).
//
// Every name cell is split into its names and the row is exploded into one
// candidate per name, carrying the row's date. Candidates whose date does
// not parse are dropped, as are rows with no name. Output keeps input order.
// Running Clean over Raw(Clean(rows)) yields the same events.
func Clean(rows []model.RawAttendance) []model.Event {
	events, _ := CleanWithReport(rows)
	return events
}

// CleanWithReport is Clean plus counters for observability.
func CleanWithReport(rows []model.RawAttendance) ([]model.Event, Report) {
	rep := Report{Rows: len(rows)}
	out := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		found := names.Extract(row.Name)
		if len(found) == 0 {
			rep.NoName++
			continue
		}
		rep.Exploded += len(found) - 1
		day, ok := dates.Parse(row.Date)
		if !ok {
			rep.InvalidDate += len(found)
			continue
		}
		for _, n := range found {
			out = append(out, model.Event{Date: day, Name: n})
		}
	}
	rep.Events = len(out)
	return out, rep
}

// Raw renders events back into unified rows with ISO dates.
func Raw(events []model.Event) []model.RawAttendance {
	out := make([]model.RawAttendance, len(events))
	for i, e := range events {
		out[i] = model.RawAttendance{Date: dates.Format(e.Date), Name: e.Name}
	}
	return out
}
