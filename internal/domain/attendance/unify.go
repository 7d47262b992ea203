// Package attendance merges the attendance logs into one event stream and
// cleans it for the metrics engine.
package attendance

import "github.com/okian/lineout/internal/domain/model"

// Unify concatenates attendance sources into (date, name) rows.
//
// The manual log and the form log label their columns differently, so headers
// are ignored: the first column of every source is the date and the second is
// the name. Sources are appended in argument order and no row is dropped;
// validation belongs to Clean.
func Unify(sources ...model.Table) []model.RawAttendance {
	total := 0
	for _, src := range sources {
		total += src.Len()
	}
	out := make([]model.RawAttendance, 0, total)
	for _, src := range sources {
		if src.Empty() {
			continue
		}
		for r := range src.Rows {
			out = append(out, model.RawAttendance{
				Date: src.Cell(r, 0),
				Name: src.Cell(r, 1),
			})
		}
	}
	return out
}
