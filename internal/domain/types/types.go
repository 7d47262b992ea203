// Package types contains the response shapes served by the API.
package types

import (
	"time"

	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/stats"
)

// Squad is the availability block of the dashboard.
type Squad struct {
	Roster       int     `json:"roster"`
	Injured      int     `json:"injured"`
	Available    int     `json:"available"`
	AvailablePct float64 `json:"available_pct"`
}

// Breakdown is the role split for one session day.
type Breakdown struct {
	Date         string   `json:"date"`
	Total        int      `json:"total"`
	Forwards     int      `json:"forwards"`
	Backs        int      `json:"backs"`
	Unidentified int      `json:"unidentified"`
	Identified   bool     `json:"identified"`
	Present      []string `json:"present"`
}

// DayCount is one point of the attendance evolution series.
type DayCount struct {
	Date    string `json:"date"`
	Players int    `json:"players"`
}

// Dashboard is the landing view.
type Dashboard struct {
	Squad        Squad      `json:"squad"`
	Sessions     []string   `json:"sessions"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
	Series       []DayCount `json:"series"`
	Unidentified []string   `json:"unidentified"`
}

// PlayerRow is one line of the roster attendance view.
type PlayerRow struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Position   string  `json:"position"`
	Attended   int     `json:"attended"`
	Sessions   int     `json:"sessions"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
	Marker     string  `json:"marker"`
	Sidelined  bool    `json:"sidelined"`
}

// Periods holds attendance per window for a single player.
type Periods struct {
	Year  float64 `json:"year"`
	Month float64 `json:"month"`
	Week  float64 `json:"week"`
}

// Injury is one injury record.
type Injury struct {
	Player          string `json:"player"`
	Severity        string `json:"severity"`
	Diagnosis       string `json:"diagnosis,omitempty"`
	EstimatedReturn string `json:"estimated_return,omitempty"`
	Active          bool   `json:"active"`
}

// PlayerDetail is the per-player profile.
type PlayerDetail struct {
	Name     string            `json:"name"`
	Role     string            `json:"role"`
	Position string            `json:"position"`
	Contact  map[string]string `json:"contact,omitempty"`
	Periods  Periods           `json:"periods"`
	Status   string            `json:"status"`
	Injuries []Injury          `json:"injuries"`
}

// Outcome of a single manual attendance submission.
type Outcome string

const (
	Recorded  Outcome = "recorded"
	Duplicate Outcome = "duplicate"
	Failed    Outcome = "failed"
)

// Mark reports what happened to one submitted name.
type Mark struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
}

// FromSquad converts the domain summary.
func FromSquad(s stats.Squad) Squad {
	return Squad{
		Roster:       s.Roster,
		Injured:      s.Injured,
		Available:    s.Available,
		AvailablePct: s.AvailablePct,
	}
}

// FromBreakdown converts a daily breakdown.
func FromBreakdown(b stats.Breakdown) Breakdown {
	present := b.Present
	if present == nil {
		present = []string{}
	}
	return Breakdown{
		Date:         dates.Format(b.Date),
		Total:        b.Total,
		Forwards:     b.Forwards,
		Backs:        b.Backs,
		Unidentified: b.Unidentified,
		Identified:   b.Identified(),
		Present:      present,
	}
}

// FromSeries converts the evolution series.
func FromSeries(series []stats.DayCount) []DayCount {
	out := make([]DayCount, 0, len(series))
	for _, d := range series {
		out = append(out, DayCount{Date: dates.Format(d.Date), Players: d.Players})
	}
	return out
}

// FromDates renders days as YYYY-MM-DD keeping their order.
func FromDates(days []time.Time) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, dates.Format(d))
	}
	return out
}

// FromRoster converts the roster attendance view.
func FromRoster(rows []stats.PlayerAttendance) []PlayerRow {
	out := make([]PlayerRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, PlayerRow{
			Name:       r.Player.FullName(),
			Role:       r.Player.Role,
			Position:   r.Player.Position(),
			Attended:   r.Attended,
			Sessions:   r.Sessions,
			Percentage: r.Percentage,
			Status:     string(r.Status),
			Marker:     r.Status.Emoji(),
			Sidelined:  r.Sidelined,
		})
	}
	return out
}

// FromPeriods converts period percentages.
func FromPeriods(p stats.Periods) Periods {
	return Periods{Year: p.Year, Month: p.Month, Week: p.Week}
}

// FromInjuries converts injury records.
func FromInjuries(records []model.Injury) []Injury {
	out := make([]Injury, 0, len(records))
	for _, r := range records {
		out = append(out, Injury{
			Player:          r.Player,
			Severity:        r.Severity,
			Diagnosis:       r.Diagnosis,
			EstimatedReturn: r.EstimatedReturn,
			Active:          r.Active(),
		})
	}
	return out
}
