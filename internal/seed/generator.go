// Package seed builds demo workbooks with the same layout and quirks as the
// club's real attendance spreadsheet.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/okian/lineout/internal/adapters/repository"
	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/pkg/logger"
)

// ErrInvalidConfig is returned for negative sizes or an oversized roster.
var ErrInvalidConfig = errors.New("invalid seed config")

type player struct {
	first, last, role, position string
	propensity                  float64
}

func (p player) name() string { return p.first + " " + p.last }

// Generate returns the four sheets of a demo workbook and a summary.
func Generate(cfg Config) ([]repository.Sheet, Stats, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, Stats{}, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	g := &generator{cfg: cfg, rng: rng}

	squad := g.roster()
	manual, form := g.attendance(squad)
	injuries := g.injuries(squad)

	g.stats.Players = len(squad)
	g.stats.Sessions = cfg.Sessions
	g.stats.ManualRows = len(manual.Rows)
	g.stats.FormRows = len(form.Rows)
	g.stats.Injuries = len(injuries.Rows)

	return []repository.Sheet{
		{Name: cfg.Tables.Roster, Table: rosterTable(squad)},
		{Name: cfg.Tables.Manual, Table: manual},
		{Name: cfg.Tables.Form, Table: form},
		{Name: cfg.Tables.Injuries, Table: injuries},
	}, g.stats, nil
}

// Write generates a workbook and stores it at cfg.Out on fs.
func Write(ctx context.Context, fs afero.Fs, cfg Config) (Stats, error) {
	sheets, stats, err := Generate(cfg)
	if err != nil {
		return Stats{}, err
	}
	out := cfg.Out
	if out == "" {
		out = DefaultOut
	}
	if err := repository.WriteWorkbook(fs, out, sheets...); err != nil {
		return Stats{}, errors.Wrapf(err, "write %s", out)
	}
	logger.Get().Info(ctx, "seed workbook written",
		logger.String("path", out),
		logger.Int("players", stats.Players),
		logger.Int("sessions", stats.Sessions),
		logger.Int("manualRows", stats.ManualRows),
		logger.Int("formRows", stats.FormRows),
		logger.Int("injuries", stats.Injuries))
	return stats, nil
}

func withDefaults(cfg Config) (Config, error) {
	if cfg.Players < 0 || cfg.Sessions < 0 || cfg.Players > MaxPlayers {
		return cfg, errors.Wrapf(ErrInvalidConfig, "players=%d sessions=%d", cfg.Players, cfg.Sessions)
	}
	if cfg.Players == 0 {
		cfg.Players = DefaultPlayers
	}
	if cfg.Sessions == 0 {
		cfg.Sessions = DefaultSessions
	}
	if cfg.End.IsZero() {
		cfg.End = time.Now()
	}
	cfg.End = dates.Day(cfg.End)
	t := &cfg.Tables
	if t.Roster == "" {
		t.Roster = "Jugadores"
	}
	if t.Manual == "" {
		t.Manual = "DB_Asistencia"
	}
	if t.Form == "" {
		t.Form = "Respuestas de formulario 3"
	}
	if t.Injuries == "" {
		t.Injuries = "Lesionados"
	}
	return cfg, nil
}

type generator struct {
	cfg   Config
	rng   *rand.Rand
	stats Stats
}

func (g *generator) pick(from []string) string {
	return from[g.rng.IntN(len(from))]
}

func (g *generator) roster() []player {
	seen := make(map[string]struct{}, g.cfg.Players)
	out := make([]player, 0, g.cfg.Players)
	for len(out) < g.cfg.Players {
		p := player{first: g.pick(firstNames), last: g.pick(lastNames)}
		if _, dup := seen[p.name()]; dup {
			// Name space exhausted; disambiguate with a second surname.
			if len(seen) >= len(firstNames)*len(lastNames) {
				p.last = fmt.Sprintf("%s %s", p.last, g.pick(lastNames))
			}
			if _, dup = seen[p.name()]; dup {
				continue
			}
		}
		seen[p.name()] = struct{}{}
		if g.rng.Float64() < forwardShare {
			p.role, p.position = "Forward", g.pick(forwardPositions)
		} else {
			p.role, p.position = "Back", g.pick(backPositions)
		}
		p.propensity = minPropensity + g.rng.Float64()*propensityRange
		out = append(out, p)
	}
	return out
}

func rosterTable(squad []player) model.Table {
	t := model.Table{Header: []string{"Nombre", "Apellido", "Tipo", "Puesto", "Telefono"}}
	for i, p := range squad {
		phone := fmt.Sprintf("+54 9 11 %04d-%04d", 1000+i*37%9000, 2000+i*53%8000)
		t.Rows = append(t.Rows, []string{p.first, p.last, p.role, p.position, phone})
	}
	return t
}

// sessionDays returns n training days (Tuesday, Thursday, Saturday), oldest
// first, ending on or before end.
func sessionDays(end time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for d := end; len(out) < n; d = d.AddDate(0, 0, -1) {
		switch d.Weekday() {
		case time.Tuesday, time.Thursday, time.Saturday:
			out = append(out, d)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (g *generator) attendance(squad []player) (model.Table, model.Table) {
	manual := model.Table{Header: []string{"Fecha", "Jugador", "Origen"}}
	form := model.Table{Header: []string{"Marca temporal", "Nombre y apellido", "ID de respuesta"}}

	for _, day := range sessionDays(g.cfg.End, g.cfg.Sessions) {
		var viaForm []string
		for _, p := range squad {
			if g.rng.Float64() >= p.propensity {
				continue
			}
			if g.rng.Float64() < formShare {
				viaForm = append(viaForm, p.name())
				continue
			}
			manual.Rows = append(manual.Rows, []string{dates.FormatDayFirst(day), p.name(), "Manual"})
		}
		if g.rng.Float64() < guestRate {
			viaForm = append(viaForm, g.pick(guests))
		}

		stamp := day.Add(time.Duration(18+g.rng.IntN(3))*time.Hour + time.Duration(g.rng.IntN(60))*time.Minute)
		for len(viaForm) > 0 {
			n := min(1+g.rng.IntN(maxFormGroup), len(viaForm))
			cell := strings.Join(viaForm[:n], ", ")
			viaForm = viaForm[n:]
			form.Rows = append(form.Rows, []string{stamp.Format("2006-01-02 15:04:05"), cell, g.responseID(day, cell)})
			stamp = stamp.Add(time.Duration(1+g.rng.IntN(5)) * time.Minute)
		}

		if g.rng.Float64() < placeholderRate {
			name := "nan"
			if g.rng.IntN(2) == 0 {
				name = ""
			}
			form.Rows = append(form.Rows, []string{stamp.Format("2006-01-02 15:04:05"), name, g.responseID(day, name)})
			g.stats.Placeholders++
		}
	}
	return manual, form
}

// responseID is derived from the seed so a seed reproduces the whole file.
func (g *generator) responseID(day time.Time, cell string) string {
	key := fmt.Sprintf("%d|%s|%s|%d", g.cfg.Seed, dates.Format(day), cell, g.rng.Uint64())
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func (g *generator) injuries(squad []player) model.Table {
	t := model.Table{Header: []string{"Jugador", "Gravedad", "Diagnostico", "Fecha estimada de regreso"}}
	for _, p := range squad {
		if g.rng.Float64() >= injuryRate {
			continue
		}
		ret := g.cfg.End.AddDate(0, 0, 7+g.rng.IntN(42))
		t.Rows = append(t.Rows, []string{p.name(), g.pick(severities), g.pick(diagnoses), dates.FormatDayFirst(ret)})
	}
	return t
}
